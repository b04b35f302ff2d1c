package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clienthub/clienthub/internal/apperrors"
	"github.com/clienthub/clienthub/internal/middleware"
	"github.com/clienthub/clienthub/internal/model"
	"github.com/clienthub/clienthub/internal/service"
)

// CustomerHTTPHandler is http handler for customers endpoint
type CustomerHTTPHandler struct {
	customerSvc service.CustomerService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(customerSvc service.CustomerService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{customerSvc: customerSvc}
}

// GetAll returns all customers of the authenticated user
// @Summary     List customers
// @Description Returns all customers owned by the authenticated user, newest first
// @Tags        customers
// @Produce     json
// @Security    ApiKeyAuth
// @Success     200 {array}  model.Customer
// @Failure     401 {object} echo.HTTPError
// @Failure     500 {object} echo.HTTPError
// @Router      /api/customers [get]
func (h *CustomerHTTPHandler) GetAll(c echo.Context) error {
	identity := middleware.Identity(c)

	customers, err := h.customerSvc.FindAllByUserID(c.Request().Context(), identity.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Get returns single customer by id
// @Summary     Get customer
// @Description Returns single customer owned by the authenticated user
// @Tags        customers
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id  path     string true "Customer id"
// @Success     200 {object} model.Customer
// @Failure     401 {object} echo.HTTPError
// @Failure     404 {object} echo.HTTPError
// @Failure     500 {object} echo.HTTPError
// @Router      /api/customers/{id} [get]
func (h *CustomerHTTPHandler) Get(c echo.Context) error {
	identity := middleware.Identity(c)

	cust, err := h.customerSvc.FindByID(c.Request().Context(), c.Param("id"), identity.ID)
	if err != nil {
		return err
	}

	if cust == nil {
		return echo.NewHTTPError(http.StatusNotFound, "customer not found")
	}
	return c.JSON(http.StatusOK, cust)
}

// Post creates new customer
// @Summary     Create customer
// @Description Creates new customer owned by the authenticated user
// @Tags        customers
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       customer body     model.NewCustomer true "New customer data"
// @Success     201      {object} model.Customer
// @Failure     400      {object} echo.HTTPError
// @Failure     401      {object} echo.HTTPError
// @Failure     500      {object} echo.HTTPError
// @Router      /api/customers [post]
func (h *CustomerHTTPHandler) Post(c echo.Context) error {
	identity := middleware.Identity(c)

	var nc model.NewCustomer
	if err := c.Bind(&nc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nc); err != nil {
		return err
	}

	cust, err := h.customerSvc.Create(c.Request().Context(), identity.ID, &nc)
	if err != nil {
		return h.conflictOrErr(err)
	}
	return c.JSON(http.StatusCreated, cust)
}

// Put replaces customer field set
// @Summary     Update customer
// @Description Replaces the full field set of an owned customer
// @Tags        customers
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id       path     string               true "Customer id"
// @Param       customer body     model.UpdateCustomer true "Customer data"
// @Success     200      {object} model.Customer
// @Failure     400      {object} echo.HTTPError
// @Failure     401      {object} echo.HTTPError
// @Failure     404      {object} echo.HTTPError
// @Failure     500      {object} echo.HTTPError
// @Router      /api/customers/{id} [put]
func (h *CustomerHTTPHandler) Put(c echo.Context) error {
	identity := middleware.Identity(c)

	var uc model.UpdateCustomer
	if err := c.Bind(&uc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&uc); err != nil {
		return err
	}

	cust, err := h.customerSvc.Update(c.Request().Context(), identity.ID, &uc)
	if err != nil {
		return h.conflictOrErr(err)
	}

	if cust == nil {
		return echo.NewHTTPError(http.StatusNotFound, "customer not found")
	}
	return c.JSON(http.StatusOK, cust)
}

// Patch partially updates customer, absent fields stay unchanged
// @Summary     Patch customer
// @Description Applies partial update on an owned customer
// @Tags        customers
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id       path     string              true "Customer id"
// @Param       customer body     model.PatchCustomer true "Customer patch"
// @Success     200      {object} model.Customer
// @Failure     400      {object} echo.HTTPError
// @Failure     401      {object} echo.HTTPError
// @Failure     404      {object} echo.HTTPError
// @Failure     500      {object} echo.HTTPError
// @Router      /api/customers/{id} [patch]
func (h *CustomerHTTPHandler) Patch(c echo.Context) error {
	identity := middleware.Identity(c)

	var patch model.PatchCustomer
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&patch); err != nil {
		return err
	}

	cust, err := h.customerSvc.Merge(c.Request().Context(), identity.ID, &patch)
	if err != nil {
		return h.conflictOrErr(err)
	}

	if cust == nil {
		return echo.NewHTTPError(http.StatusNotFound, "customer not found")
	}
	return c.JSON(http.StatusOK, cust)
}

// DeleteByID deletes customer by id
// @Summary     Delete customer
// @Description Deletes an owned customer
// @Tags        customers
// @Security    ApiKeyAuth
// @Param       id path string true "Customer id"
// @Success     204
// @Failure     401 {object} echo.HTTPError
// @Failure     404 {object} echo.HTTPError
// @Failure     500 {object} echo.HTTPError
// @Router      /api/customers/{id} [delete]
func (h *CustomerHTTPHandler) DeleteByID(c echo.Context) error {
	identity := middleware.Identity(c)

	deleted, err := h.customerSvc.DeleteByID(c.Request().Context(), c.Param("id"), identity.ID)
	if err != nil {
		return err
	}

	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, "customer not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// conflictOrErr maps email uniqueness violation to 400 so the route layer
// contract (200/201 vs 404 vs 400) stays observable to clients
func (h *CustomerHTTPHandler) conflictOrErr(err error) error {
	var emailErr *apperrors.EmailTakenErr
	if errors.As(err, &emailErr) {
		return echo.NewHTTPError(http.StatusBadRequest, emailErr.Error())
	}
	return err
}
