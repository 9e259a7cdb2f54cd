package controllerImp

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"lifeplan/pkg/apperr"
	"lifeplan/pkg/export"
	"lifeplan/pkg/logger"
	"lifeplan/pkg/middleware"
	"lifeplan/pkg/period"
	plansvc "lifeplan/pkg/plan/service"
	prinsvc "lifeplan/pkg/principles/service"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportCtrl struct {
	plans      plansvc.PlanService
	principles prinsvc.PrinciplesService
	now        func() time.Time
	loc        *time.Location
}

func New(plans plansvc.PlanService, principles prinsvc.PrinciplesService, now func() time.Time, loc *time.Location) *ExportCtrl {
	return &ExportCtrl{plans: plans, principles: principles, now: now, loc: loc}
}

func (h *ExportCtrl) XLSX(c echo.Context) error {
	ctx := c.Request().Context()
	uid := middleware.UserID(c)
	pr, err := h.principles.Get(ctx, uid)
	if err != nil {
		return apperr.JSON(c, err)
	}
	plans, err := h.plans.GetAll(ctx, uid)
	if err != nil {
		return apperr.JSON(c, err)
	}
	f, err := export.Workbook(pr, plans)
	if err != nil {
		return apperr.JSON(c, err)
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		return apperr.JSON(c, err)
	}
	name := fmt.Sprintf("lifeplan-%s.xlsx", period.Format(period.Today(h.now(), h.loc)))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	logger.Debug("export", "user", uid, "plans", len(plans), "bytes", buf.Len())
	return c.Blob(http.StatusOK, xlsxMIME, buf.Bytes())
}
