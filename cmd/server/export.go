package main

import (
	"context"
	"fmt"
	"time"

	"lifeplan/database"
	"lifeplan/pkg/export"
	"lifeplan/pkg/logger"
)

type ExportCmd struct {
	Email string `help:"Account email." required:""`
	Out   string `help:"Output file." default:"lifeplan-export.xlsx" type:"path"`
}

func (cmd *ExportCmd) Run(ctx *cliContext) error {
	db, err := database.Open(ctx.cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeDB(db)
	return cmd.write(context.Background(), newServices(db, ctx.cfg, time.Now))
}

func (cmd *ExportCmd) write(ctx context.Context, svc services) error {
	u, err := svc.users.Lookup(ctx, cmd.Email)
	if err != nil {
		return fmt.Errorf("user %s: %w", cmd.Email, err)
	}
	pr, err := svc.principles.Get(ctx, u.ID)
	if err != nil {
		return err
	}
	plans, err := svc.plans.GetAll(ctx, u.ID)
	if err != nil {
		return err
	}
	f, err := export.Workbook(pr, plans)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(cmd.Out); err != nil {
		return fmt.Errorf("save %s: %w", cmd.Out, err)
	}
	logger.Info("exported", "user", u.ID, "plans", len(plans), "file", cmd.Out)
	return nil
}
