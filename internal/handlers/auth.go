package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clienthub/clienthub/internal/middleware"
	"github.com/clienthub/clienthub/internal/service"
)

// AuthHTTPHandler is http handler for the identity endpoint
type AuthHTTPHandler struct {
	userSvc service.UserService
}

// NewAuthHTTPHandler builds new AuthHTTPHandler
func NewAuthHTTPHandler(userSvc service.UserService) *AuthHTTPHandler {
	return &AuthHTTPHandler{userSvc: userSvc}
}

// GetUser returns the authenticated user, upserting the identity record
// from the verified token claims first
// @Summary     Current user
// @Description Returns the authenticated user refreshed from token claims
// @Tags        auth
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {object} model.User
// @Failure     401 {object} echo.HTTPError
// @Failure     500 {object} echo.HTTPError
// @Router      /api/auth/user [get]
func (h *AuthHTTPHandler) GetUser(c echo.Context) error {
	identity := middleware.Identity(c)

	u, err := h.userSvc.Upsert(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// DeleteUser deletes the authenticated user together with all owned customers
// @Summary     Delete current user
// @Description Deletes the authenticated user and cascades to owned customers
// @Tags        auth
// @Security    ApiKeyAuth
// @Success     204
// @Failure     401 {object} echo.HTTPError
// @Failure     404 {object} echo.HTTPError
// @Failure     500 {object} echo.HTTPError
// @Router      /api/auth/user [delete]
func (h *AuthHTTPHandler) DeleteUser(c echo.Context) error {
	identity := middleware.Identity(c)

	deleted, err := h.userSvc.DeleteByID(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}

	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return c.NoContent(http.StatusNoContent)
}
