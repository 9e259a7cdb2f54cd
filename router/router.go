package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	authController "lifeplan/pkg/auth/controller"
	"lifeplan/pkg/middleware"
	planController "lifeplan/pkg/plan/controller"
	prinController "lifeplan/pkg/principles/controller"
)

// MaxBodySize caps request bodies; the largest legitimate one is a plan's
// task lists.
const MaxBodySize = "1M"

type Options struct {
	Sessions       *middleware.Sessions
	EnableDevLogin bool
}

func New(
	e *echo.Echo,
	opts Options,
	authCtrl authController.AuthController,
	principlesCtrl prinController.PrinciplesController,
	planCtrl planController.PlanController,
	heatmapCtrl interface{ Heatmap(echo.Context) error },
	exportCtrl interface{ XLSX(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLog())
	e.Use(echoMiddleware.BodyLimit(MaxBodySize))

	e.GET("/health", healthCtrl.Health)

	auth := e.Group("/api/auth")
	auth.POST("/login", authCtrl.Login)
	auth.POST("/logout", authCtrl.Logout)
	if opts.EnableDevLogin {
		auth.GET("/devlogin", authCtrl.DevLogin)
	}

	api := e.Group("/api", opts.Sessions.Require())
	api.GET("/auth/me", authCtrl.Me)

	api.GET("/principles", principlesCtrl.Get)
	api.PATCH("/principles", principlesCtrl.Patch)
	api.GET("/principles/html", principlesCtrl.HTML)

	api.GET("/plans", planCtrl.List)
	api.GET("/plans/:type/:date", planCtrl.Get)
	api.GET("/plans/:type/:date/context", planCtrl.Context)
	api.PATCH("/plans/:planId", planCtrl.Patch)
	api.DELETE("/plans/:planId", planCtrl.Delete)

	api.GET("/habits/heatmap", heatmapCtrl.Heatmap)
	api.GET("/export.xlsx", exportCtrl.XLSX)
	return e
}
