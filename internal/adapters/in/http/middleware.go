package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/principal"
	"aquaserve/internal/core/ports"
)

const (
	principalContextKey = "principal"

	// orgHeader names the tenant a platform operator acts in. Tenant-bound
	// principals ignore it entirely.
	orgHeader = "X-Org-ID"
)

// PrincipalMiddleware authenticates every request: it resolves the bearer
// credential into a principal and stores it on the request context. Requests
// without a resolvable credential are rejected before reaching a handler.
func PrincipalMiddleware(resolver ports.IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			credential := bearerToken(ctx.Request().Header.Get("Authorization"))
			if credential == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "missing credentials",
				})
			}

			p, err := resolver.Resolve(ctx.Request().Context(), credential)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid credentials",
				})
			}

			ctx.Set(principalContextKey, p)
			return next(ctx)
		}
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// resolveTenant returns the tenant the authenticated caller operates in.
// The principal's own strategy decides: tenant-bound roles resolve to their
// organization regardless of the header, the platform role requires one.
func resolveTenant(ctx echo.Context) (kernel.OrgID, error) {
	p, ok := ctx.Get(principalContextKey).(principal.Principal)
	if !ok {
		return kernel.OrgID{}, echo.NewHTTPError(http.StatusUnauthorized, "missing credentials")
	}

	var requested kernel.OrgID
	if raw := ctx.Request().Header.Get(orgHeader); raw != "" {
		parsed, err := kernel.OrgIDFromString(raw)
		if err != nil {
			return kernel.OrgID{}, echo.NewHTTPError(http.StatusBadRequest, "invalid "+orgHeader+" header")
		}
		requested = parsed
	}

	orgID, err := p.ResolveTenant(requested)
	if err != nil {
		return kernel.OrgID{}, echo.NewHTTPError(http.StatusUnprocessableEntity, "tenant could not be resolved")
	}
	return orgID, nil
}
