package main

import (
	"gorm.io/gorm"

	"lifeplan/database"
	"lifeplan/pkg/logger"
)

type MigrateCmd struct{}

func (cmd *MigrateCmd) Run(ctx *cliContext) error {
	db, err := database.Open(ctx.cfg.DBPath)
	if err != nil {
		return err
	}
	closeDB(db)
	logger.Info("database ready", "path", ctx.cfg.DBPath)
	return nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("close database", "err", err)
	}
}
