package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mi-ecommerce/marketplace-api/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// fast-fails when they are missing: a non-empty role proves the middleware
// ran before the handler.
func ctxClaims(c echo.Context) (userID int64, role string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	userID, _ = c.Get("user_id").(int64)
	return userID, role, nil
}

// requireSelfOrAdmin rejects callers that are neither admins nor the owner of
// the targeted record.
func requireSelfOrAdmin(c echo.Context, targetID int64) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if role != domain.RoleAdmin && userID != targetID {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}
	return nil
}

// pathID parses the :id route parameter as a positive integer.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
