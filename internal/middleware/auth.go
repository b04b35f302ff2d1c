package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/clienthub/clienthub/internal/auth"
	"github.com/clienthub/clienthub/internal/model"
)

const identityContextKey = "identity"

// Authorize verifies the bearer token issued by the identity provider and
// stores the asserted identity in the request context. Identity is trusted
// from this point on - downstream layers only scope queries by it.
func Authorize(validator *auth.JwtValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHdr := c.Request().Header.Get("Authorization")
			hdrSplit := strings.Split(authHdr, " ")
			if len(hdrSplit) != 2 {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid Authorization header format")
			}

			claims, err := validator.Verify(hdrSplit[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}

			c.Set(identityContextKey, &model.UpsertUser{
				ID:              claims.Subject,
				Email:           claims.Email,
				FirstName:       claims.FirstName,
				LastName:        claims.LastName,
				ProfileImageURL: claims.ProfileImageURL,
			})

			return next(c)
		}
	}
}

// Identity extracts the asserted identity stored by Authorize
func Identity(c echo.Context) *model.UpsertUser {
	if identity, ok := c.Get(identityContextKey).(*model.UpsertUser); ok {
		return identity
	}
	return nil
}
