package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"

	"lifeplan/pkg/apperr"
)

const (
	SessionCookie = "lp_session"
	uidKey        = "uid"
)

// Sessions issues and checks the signed session cookie. The token is an
// HS256 JWT whose subject is the user id.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewSessions(secret string, ttl time.Duration, secure bool) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl, secure: secure}
}

func (s *Sessions) Token(userID string, now time.Time) (string, error) {
	claims := jwt.StandardClaims{
		Subject:   userID,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse returns the user id carried by token.
func (s *Sessions) Parse(token string) (string, error) {
	var claims jwt.StandardClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperr.ErrNotAuthenticated, err)
	}
	if claims.Subject == "" {
		return "", apperr.ErrNotAuthenticated
	}
	return claims.Subject, nil
}

// Issue sets a fresh session cookie for userID on the response.
func (s *Sessions) Issue(c echo.Context, userID string) error {
	now := time.Now()
	token, err := s.Token(userID, now)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(s.ttl),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *Sessions) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Require rejects requests without a valid session cookie and stores the
// user id for UserID.
func (s *Sessions) Require() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(SessionCookie)
			if err != nil || ck.Value == "" {
				return apperr.JSON(c, apperr.ErrNotAuthenticated)
			}
			uid, err := s.Parse(ck.Value)
			if err != nil {
				return apperr.JSON(c, apperr.ErrNotAuthenticated)
			}
			c.Set(uidKey, uid)
			return next(c)
		}
	}
}

// UserID returns the session user set by Require, or "" outside it.
func UserID(c echo.Context) string {
	uid, _ := c.Get(uidKey).(string)
	return uid
}
