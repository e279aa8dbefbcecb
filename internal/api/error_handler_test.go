package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mi-ecommerce/marketplace-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorEnvelope) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var env errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid body %q: %v", rec.Body.String(), err)
	}
	return rec.Code, env
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user does not exist"},
		{"product not found", domain.ErrProductNotFound, http.StatusNotFound, "product does not exist"},
		{"cart not found", domain.ErrCartNotFound, http.StatusNotFound, "cart does not exist"},
		{"username taken", domain.ErrUsernameTaken, http.StatusBadRequest, "username already registered"},
		{"email taken", domain.ErrEmailTaken, http.StatusBadRequest, "email already registered"},
		{"category in use", domain.ErrCategoryInUse, http.StatusBadRequest, "category has products assigned"},
		{"category name taken", domain.ErrCategoryNameTaken, http.StatusBadRequest, "category name already registered"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "credentials are not valid"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, env := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if !env.Error || env.Msg != tc.msg {
				t.Fatalf("unexpected envelope: %+v", env)
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	code, env := renderError(t, fmt.Errorf("%w 3", domain.ErrInsufficientStock))
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if !env.Error {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, env := renderError(t, echo.NewHTTPError(http.StatusForbidden, "forbidden"))
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
	if env.Msg != "forbidden" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	code, env := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if env.Msg != "internal server error" {
		t.Fatalf("internal detail leaked: %+v", env)
	}
}
