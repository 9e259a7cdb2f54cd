package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"

	"lifeplan/pkg/apperr"
)

func TestTokenRoundTrip(t *testing.T) {
	s := NewSessions("secret", time.Hour, false)
	tok, err := s.Token("user-1", time.Now())
	if err != nil {
		t.Fatalf("Token: %v", err)
	}
	uid, err := s.Parse(tok)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if uid != "user-1" {
		t.Errorf("uid = %q", uid)
	}
}

func TestParseRejects(t *testing.T) {
	s := NewSessions("secret", time.Hour, false)

	expired, err := s.Token("user-1", time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	forged, err := NewSessions("other", time.Hour, false).Token("user-1", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.StandardClaims{Subject: "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}
	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}

	for name, tok := range map[string]string{
		"expired":    expired,
		"forged":     forged,
		"alg none":   none,
		"no subject": noSubject,
		"garbage":    "not-a-token",
	} {
		if _, err := s.Parse(tok); !errors.Is(err, apperr.ErrNotAuthenticated) {
			t.Errorf("%s: err = %v, want not authenticated", name, err)
		}
	}
}

func TestRequire(t *testing.T) {
	s := NewSessions("secret", time.Hour, false)
	e := echo.New()
	e.GET("/private", func(c echo.Context) error {
		return c.String(http.StatusOK, UserID(c))
	}, s.Require())

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/private", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no cookie: status = %d", rec.Code)
	}

	tok, err := s.Token("user-9", time.Now())
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tok})
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "user-9" {
		t.Errorf("with cookie: status = %d body = %q", rec.Code, rec.Body.String())
	}
}

func TestIssueAndClear(t *testing.T) {
	s := NewSessions("secret", time.Hour, true)
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	if err := s.Issue(c, "user-2"); err != nil {
		t.Fatalf("Issue: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d", len(cookies))
	}
	ck := cookies[0]
	if ck.Name != SessionCookie || !ck.HttpOnly || !ck.Secure {
		t.Errorf("cookie = %+v", ck)
	}
	if uid, err := s.Parse(ck.Value); err != nil || uid != "user-2" {
		t.Errorf("Parse(cookie) = %q, %v", uid, err)
	}

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
	s.Clear(c)
	if got := rec.Result().Cookies(); len(got) != 1 || got[0].MaxAge >= 0 {
		t.Errorf("clear cookie = %+v", got)
	}
}
