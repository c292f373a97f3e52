package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"social-service/internal/domain"
	"social-service/internal/infrastructure"
	"social-service/internal/repository"
)

const userContextKey = "authUser"

// RequireAuth verifies the bearer token, loads the caller's identity and
// binds it into the request context. Every failure surfaces as a 401
// through the central error handler before any handler logic runs.
func RequireAuth(tokens *infrastructure.TokenService, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, no token")
			}

			subject, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, token failed")
			}
			id, err := primitive.ObjectIDFromHex(subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, token failed")
			}

			user, err := users.FindByID(c.Request().Context(), id)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized, token failed")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the identity bound by RequireAuth. Only valid on
// routes behind that middleware.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}
