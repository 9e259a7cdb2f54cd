package controller

import "github.com/labstack/echo/v4"

type PrinciplesController interface {
	Get(c echo.Context) error
	Patch(c echo.Context) error
	HTML(c echo.Context) error
}
