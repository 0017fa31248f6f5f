package middleware

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/pump-maintenance/internal/model"
)

// RequireRole returns a middleware that enforces that the authenticated
// caller holds one of the given roles.  Roles are the closed model.Role
// enumeration, so every permission tier in the API is declared at route
// registration rather than compared ad hoc inside handlers.  It assumes
// JWTAuth has already stored the token's role claim in the context; a
// missing or unknown role is rejected with 403.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
    allowed := make(map[model.Role]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            v, ok := c.Get("role").(string)
            if !ok || !allowed[model.Role(v)] {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
            }
            return next(c)
        }
    }
}
