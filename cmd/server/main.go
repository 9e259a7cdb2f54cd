package main

import (
	"github.com/alecthomas/kong"

	"lifeplan/config"
	"lifeplan/pkg/logger"
)

var CLI struct {
	DB string `help:"SQLite database path. Overrides DB_PATH." type:"path"`

	Serve   ServeCmd   `cmd:"" help:"Run the HTTP server." default:"1"`
	Migrate MigrateCmd `cmd:"" help:"Apply migrations and exit."`
	Export  ExportCmd  `cmd:"" help:"Write one user's journal to an xlsx file."`
}

type cliContext struct {
	cfg config.AppConfig
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("lifeplan"),
		kong.Description("Hierarchical life planner and journal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// 1) Config + logger
	cfg := config.Load()
	if CLI.DB != "" {
		cfg.DBPath = CLI.DB
	}

	if err := ctx.Run(&cliContext{cfg: cfg}); err != nil {
		logger.Fatal("command failed", "cmd", ctx.Command(), "err", err)
	}
}
