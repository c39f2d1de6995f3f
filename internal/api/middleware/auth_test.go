package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/talenthub/recruiting-api/internal/core/domain"
	"github.com/talenthub/recruiting-api/internal/pkg/token"
)

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	signed, err := token.Sign(&domain.User{
		ID:       "u1",
		Username: "ana",
		Email:    "ana@example.com",
		Role:     domain.RoleHR,
	}, "secret", time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth("secret")
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get(ctxKeyUsername) != "ana" {
			t.Fatalf("username not set")
		}
		if c.Get(ctxKeyRole) != "HR" {
			t.Fatalf("role not set")
		}
		if c.Get(ctxKeyUserID) != "u1" {
			t.Fatalf("user id not set")
		}
		if _, ok := c.Get(ctxKeyClaims).(*token.Claims); !ok {
			t.Fatalf("typed claims not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func runAuthExpecting401(t *testing.T, mutate func(*http.Request)) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	mutate(req)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth("secret")
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	runAuthExpecting401(t, func(*http.Request) {})
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	runAuthExpecting401(t, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Token abc")
	})
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	runAuthExpecting401(t, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	})
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	signed, err := token.Sign(&domain.User{ID: "u1", Role: domain.RoleHR}, "secret", -time.Minute)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	runAuthExpecting401(t, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	})
}
