package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"lifeplan/database"
	"lifeplan/pkg/logger"
	"lifeplan/pkg/middleware"
	"lifeplan/router"

	authCtrlImp "lifeplan/pkg/auth/controllerImp"
	exportCtrlImp "lifeplan/pkg/export/controllerImp"
	habitCtrlImp "lifeplan/pkg/habit/controllerImp"
	healthCtrlImp "lifeplan/pkg/health/controllerImp"
	planCtrlImp "lifeplan/pkg/plan/controllerImp"
	prinCtrlImp "lifeplan/pkg/principles/controllerImp"
)

type ServeCmd struct {
	Port string `help:"Listen port. Overrides PORT."`
}

func (cmd *ServeCmd) Run(ctx *cliContext) error {
	cfg := ctx.cfg
	if cmd.Port != "" {
		cfg.Port = cmd.Port
	}

	// 2) DB (sqlite) + automigrate
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeDB(db)

	// 3) Services + controllers
	svc := newServices(db, cfg, time.Now)
	sessions := middleware.NewSessions(cfg.SessionSecret, cfg.SessionTTL, cfg.CookieSecure)

	aCtrl := authCtrlImp.NewAuthController(svc.users, sessions)
	prCtrl := prinCtrlImp.New(svc.principles)
	plCtrl := planCtrlImp.NewPlanCtrl(svc.plans)
	hmCtrl := habitCtrlImp.New(svc.plans, svc.principles, cfg.HabitWindowDays, svc.now, svc.loc)
	exCtrl := exportCtrlImp.New(svc.plans, svc.principles, svc.now, svc.loc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 4) Echo + router
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	if cfg.EnableDevLogin {
		logger.Warn("dev login enabled, do not run this in production")
	}
	router.New(e,
		router.Options{Sessions: sessions, EnableDevLogin: cfg.EnableDevLogin},
		aCtrl, prCtrl, plCtrl, hmCtrl, exCtrl, hCtrl,
	)

	// 5) Start
	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", ":"+cfg.Port)
		errc <- e.Start(":" + cfg.Port)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
