package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lifeplan/pkg/apperr"
	"lifeplan/pkg/auth/controller"
	"lifeplan/pkg/middleware"
	"lifeplan/pkg/strictjson"
	usersvc "lifeplan/pkg/user/service"
)

type authCtrl struct {
	users    usersvc.UserService
	sessions *middleware.Sessions
}

func NewAuthController(users usersvc.UserService, sessions *middleware.Sessions) controller.AuthController {
	return &authCtrl{users: users, sessions: sessions}
}

type loginReq struct {
	Email string `json:"email"`
}

func (h *authCtrl) Login(c echo.Context) error {
	var req loginReq
	if err := strictjson.Decode(c.Request().Body, &req); err != nil {
		return apperr.JSON(c, err)
	}
	return h.login(c, req.Email)
}

// DevLogin signs in through a query parameter. Only routed in development.
func (h *authCtrl) DevLogin(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		email = "dev@localhost.localdomain"
	}
	return h.login(c, email)
}

func (h *authCtrl) login(c echo.Context, email string) error {
	u, err := h.users.Login(c.Request().Context(), email)
	if err != nil {
		return apperr.JSON(c, err)
	}
	if err := h.sessions.Issue(c, u.ID); err != nil {
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"user": u})
}

func (h *authCtrl) Logout(c echo.Context) error {
	h.sessions.Clear(c)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *authCtrl) Me(c echo.Context) error {
	u, err := h.users.Get(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		// a valid token for a user that no longer exists
		return apperr.JSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"user": u})
}
