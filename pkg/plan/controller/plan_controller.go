package controller

import "github.com/labstack/echo/v4"

type PlanController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Context(c echo.Context) error
	Patch(c echo.Context) error
	Delete(c echo.Context) error
}
