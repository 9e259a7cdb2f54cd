package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lifeplan/pkg/apperr"
	"lifeplan/pkg/middleware"
	"lifeplan/pkg/period"
	"lifeplan/pkg/plan/controller"
	"lifeplan/pkg/plan/service"
)

type PlanCtrl struct{ svc service.PlanService }

func NewPlanCtrl(svc service.PlanService) *PlanCtrl { return &PlanCtrl{svc: svc} }

var _ controller.PlanController = (*PlanCtrl)(nil)

func (h *PlanCtrl) List(c echo.Context) error {
	plans, err := h.svc.GetAll(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, plans)
}

// Get returns the plan for :type/:date, creating it on first visit. The date
// may be any day inside the period.
func (h *PlanCtrl) Get(c echo.Context) error {
	ref, err := period.Canonical(c.Param("type"), c.Param("date"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	p, err := h.svc.GetOrCreate(c.Request().Context(), middleware.UserID(c), ref)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlanCtrl) Context(c echo.Context) error {
	ref, err := period.Canonical(c.Param("type"), c.Param("date"))
	if err != nil {
		return apperr.JSON(c, err)
	}
	out, err := h.svc.Context(c.Request().Context(), middleware.UserID(c), ref)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlanCtrl) Patch(c echo.Context) error {
	patch, err := service.DecodePlanPatch(c.Request().Body)
	if err != nil {
		return apperr.JSON(c, err)
	}
	p, err := h.svc.Update(c.Request().Context(), c.Param("planId"), middleware.UserID(c), patch)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlanCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("planId"), middleware.UserID(c)); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
