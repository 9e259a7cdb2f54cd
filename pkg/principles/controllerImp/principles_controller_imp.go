package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lifeplan/pkg/apperr"
	"lifeplan/pkg/middleware"
	"lifeplan/pkg/principles/controller"
	"lifeplan/pkg/principles/service"
	"lifeplan/pkg/render"
)

type PrinciplesCtrl struct{ s service.PrinciplesService }

func New(s service.PrinciplesService) controller.PrinciplesController { return &PrinciplesCtrl{s} }

func (h *PrinciplesCtrl) Get(c echo.Context) error {
	p, err := h.s.Get(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PrinciplesCtrl) Patch(c echo.Context) error {
	patch, err := service.DecodePrinciplesPatch(c.Request().Body)
	if err != nil {
		return apperr.JSON(c, err)
	}
	p, err := h.s.Update(c.Request().Context(), middleware.UserID(c), patch)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// HTML serves the principles document rendered from markdown.
func (h *PrinciplesCtrl) HTML(c echo.Context) error {
	p, err := h.s.Get(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return apperr.JSON(c, err)
	}
	out, err := render.HTML(p.Content)
	if err != nil {
		return apperr.JSON(c, err)
	}
	return c.HTML(http.StatusOK, out)
}
