package server

import (
	"net/http"
	"strconv"
	"strings"

	"adminpanel/pkg/log"

	"github.com/labstack/echo/v4"
)

// requireAuth gates mutation endpoints behind a valid bearer credential.
// The token comes from the Authorization header or a "token" cookie. All
// failures look the same to the caller.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		token := bearerToken(ctx)
		if token == "" {
			return ctx.JSON(http.StatusUnauthorized, map[string]string{
				"error": "unauthorized",
			})
		}

		userRecord, err := s.gate.Verify(token)
		if err != nil {
			log.Debug().Err(err).Str("path", ctx.Request().URL.Path).Msg("Rejected credential")
			return ctx.JSON(http.StatusUnauthorized, map[string]string{
				"error": "unauthorized",
			})
		}

		ctx.Set("user", userRecord)
		return next(ctx)
	}
}

// bearerToken extracts the credential from the Authorization header or the
// token cookie.
func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}

	cookie, err := ctx.Cookie("token")
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}

// parseID parses a decimal record ID.
func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
