package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/pump-maintenance/internal/middleware"
	"github.com/iliyamo/pump-maintenance/internal/model"
)

func invokeWithRole(t *testing.T, mw echo.MiddlewareFunc, role interface{}) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/pumps/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set("role", role)
	}

	h := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	require.NoError(t, h(c))
	return rec
}

func TestRequireRoleAllows(t *testing.T) {
	rec := invokeWithRole(t, middleware.RequireRole(model.RoleAdmin), "admin")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	// A technician token must not reach admin-only routes.
	rec := invokeWithRole(t, middleware.RequireRole(model.RoleAdmin), "technician")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleRejectsMissingRole(t *testing.T) {
	rec := invokeWithRole(t, middleware.RequireRole(model.RoleAdmin), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleMultipleTiers(t *testing.T) {
	mw := middleware.RequireRole(model.RoleTechnician, model.RoleAdmin)

	assert.Equal(t, http.StatusOK, invokeWithRole(t, mw, "technician").Code)
	assert.Equal(t, http.StatusOK, invokeWithRole(t, mw, "admin").Code)
	assert.Equal(t, http.StatusForbidden, invokeWithRole(t, mw, "viewer").Code)
}
