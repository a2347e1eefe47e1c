package auth

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "qaforum/internal/errors"
)

// identityKey is where the gate stores verified claims on the request context.
const identityKey = "user"

// Middleware returns the auth gate: it extracts a bearer token from the
// Authorization header, verifies it through the JWT service, and either
// attaches the identity to the request context or rejects the request.
// Route groups are guarded wholesale; there are no per-route exceptions.
func Middleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: identityKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			switch {
			case errors.Is(err, ErrTokenExpired):
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Msg:  "token expired. Please log in again.",
					Code: "TOKEN_EXPIRED",
				})
			case errors.Is(err, ErrTokenMalformed), errors.Is(err, ErrTokenSignature):
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Msg:  "invalid token",
					Code: "TOKEN_INVALID",
				})
			case errors.Is(err, ErrTokenInvalid):
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
					Msg:  "failed to authenticate token",
					Code: "TOKEN_REJECTED",
				})
			default:
				// No Authorization header or no bearer scheme.
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Msg:  "no token provided",
					Code: "NO_TOKEN",
				})
			}
		},
	})
}

// IdentityFromContext returns the verified claims the gate attached to the
// request, or false on an unguarded route.
func IdentityFromContext(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(identityKey).(*Claims)
	return claims, ok
}
