package auth

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"wardrobe/internal/errors"
)

const (
	// ContextKey is where the middleware stores *Claims on the echo context.
	ContextKey = "auth.claims"

	tokenErrorKey = "auth.token_error"

	msgMissingHeader = "Missing or invalid Authorization header"
	msgInvalidToken  = "Invalid or expired token"
)

// Middleware gates a route group on a valid, unrevoked bearer token.
func Middleware(jwtService *JWTService, tokens TokenStoreInterface) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(raw)
			if err == nil && tokens != nil {
				if revoked, _ := tokens.IsRevoked(c.Request().Context(), claims.ID); revoked {
					err = ErrInvalidToken
				}
			}
			if err != nil {
				c.Set(tokenErrorKey, err)
				return nil, err
			}
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			msg := msgMissingHeader
			if c.Get(tokenErrorKey) != nil {
				msg = msgInvalidToken
			}
			c.Logger().Debugf("auth rejected %s %s: %v", c.Request().Method, c.Path(), err)
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: msg,
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// ClaimsFrom returns the claims stored by Middleware.
func ClaimsFrom(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(ContextKey).(*Claims)
	return claims, ok && claims != nil
}

// UserID returns the authenticated user's ID.
func UserID(c echo.Context) (uint, bool) {
	claims, ok := ClaimsFrom(c)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}
