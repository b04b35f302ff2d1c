package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/clienthub/clienthub/internal/apperrors"
	"github.com/clienthub/clienthub/internal/model"
	svcMocks "github.com/clienthub/clienthub/internal/service/mocks"
	"github.com/clienthub/clienthub/internal/validation"
)

const testUserID = "0583d7f3-5ae1-416a-92fa-120851905551"

type customerHandlerTestSuite struct {
	suite.Suite
	e               *echo.Echo
	handler         *CustomerHTTPHandler
	customerSvcMock *svcMocks.CustomerService
}

func (s *customerHandlerTestSuite) SetupSuite() {
	s.e = echo.New()

	v, err := validation.Default()
	s.Require().NoError(err, "failed to build validator")
	s.e.Validator = v
}

func (s *customerHandlerTestSuite) SetupTest() {
	s.customerSvcMock = svcMocks.NewCustomerService(s.T())
	s.handler = NewCustomerHTTPHandler(s.customerSvcMock)
}

func (s *customerHandlerTestSuite) newContext(method string, target string, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("identity", &model.UpsertUser{ID: testUserID})
	return c, rec
}

func (s *customerHandlerTestSuite) TestGetAll() {
	customers := []*model.Customer{{ID: "c1", UserID: testUserID, Name: "Jane Doe", Email: "jane@x.com", Status: model.StatusLead}}
	s.customerSvcMock.On("FindAllByUserID", mock.Anything, testUserID).Return(customers, nil).Once()

	c, rec := s.newContext(http.MethodGet, "/api/customers", "")

	s.T().Log("owned customers must be returned")
	{
		s.Require().NoError(s.handler.GetAll(c), "no error must be raised")
		s.Assert().Equal(http.StatusOK, rec.Code, "status must be 200")

		var res []*model.Customer
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res), "response must be valid json")
		s.Assert().Len(res, 1, "all customers must be rendered")
	}
}

func (s *customerHandlerTestSuite) TestGetNotFound() {
	s.customerSvcMock.On("FindByID", mock.Anything, "missing", testUserID).Return(nil, nil).Once()

	c, _ := s.newContext(http.MethodGet, "/api/customers/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	s.T().Log("absent customer must map to 404")
	{
		err := s.handler.Get(c)
		s.Require().Error(err, "handler must raise http error")

		var httpErr *echo.HTTPError
		s.Require().ErrorAs(err, &httpErr, "error must be echo http error")
		s.Assert().Equal(http.StatusNotFound, httpErr.Code, "status must be 404")
	}
}

func (s *customerHandlerTestSuite) TestPostCreated() {
	created := &model.Customer{ID: "c1", UserID: testUserID, Name: "Jane Doe", Email: "jane@x.com", Status: model.StatusLead}
	s.customerSvcMock.On("Create", mock.Anything, testUserID, mock.AnythingOfType("*model.NewCustomer")).Return(created, nil).Once()

	c, rec := s.newContext(http.MethodPost, "/api/customers", `{"name":"Jane Doe","email":"jane@x.com","status":"Lead"}`)

	s.T().Log("valid payload must create customer")
	{
		s.Require().NoError(s.handler.Post(c), "no error must be raised")
		s.Assert().Equal(http.StatusCreated, rec.Code, "status must be 201")
	}
}

func (s *customerHandlerTestSuite) TestPostInvalidPayload() {
	c, _ := s.newContext(http.MethodPost, "/api/customers", `{"name":"","email":"not-an-email"}`)

	s.T().Log("malformed payload must be rejected before reaching the service")
	{
		err := s.handler.Post(c)
		s.Require().Error(err, "validation error must be raised")

		var pldErr *validation.PayloadError
		s.Assert().ErrorAs(err, &pldErr, "error must carry field violations")
		s.customerSvcMock.AssertNotCalled(s.T(), "Create", mock.Anything, testUserID, mock.AnythingOfType("*model.NewCustomer"))
	}
}

func (s *customerHandlerTestSuite) TestPostEmailTaken() {
	s.customerSvcMock.On("Create", mock.Anything, testUserID, mock.AnythingOfType("*model.NewCustomer")).
		Return(nil, apperrors.NewEmailTakenErr("jane@x.com")).Once()

	c, _ := s.newContext(http.MethodPost, "/api/customers", `{"name":"Jane Doe","email":"jane@x.com"}`)

	s.T().Log("uniqueness violation must map to 400")
	{
		err := s.handler.Post(c)
		s.Require().Error(err, "handler must raise http error")

		var httpErr *echo.HTTPError
		s.Require().ErrorAs(err, &httpErr, "error must be echo http error")
		s.Assert().Equal(http.StatusBadRequest, httpErr.Code, "status must be 400")
	}
}

func (s *customerHandlerTestSuite) TestPutNotFound() {
	s.customerSvcMock.On("Update", mock.Anything, testUserID, mock.AnythingOfType("*model.UpdateCustomer")).Return(nil, nil).Once()

	c, _ := s.newContext(http.MethodPut, "/api/customers/missing", `{"name":"Jane Doe","email":"jane@x.com"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	s.T().Log("update of absent customer must map to 404")
	{
		err := s.handler.Put(c)
		s.Require().Error(err, "handler must raise http error")

		var httpErr *echo.HTTPError
		s.Require().ErrorAs(err, &httpErr, "error must be echo http error")
		s.Assert().Equal(http.StatusNotFound, httpErr.Code, "status must be 404")
	}
}

func (s *customerHandlerTestSuite) TestPatchOk() {
	patched := &model.Customer{ID: "c1", UserID: testUserID, Name: "Jane Doe", Email: "jane@x.com", Status: model.StatusActive}
	s.customerSvcMock.On("Merge", mock.Anything, testUserID, mock.AnythingOfType("*model.PatchCustomer")).Return(patched, nil).Once()

	c, rec := s.newContext(http.MethodPatch, "/api/customers/c1", `{"status":"Active"}`)
	c.SetParamNames("id")
	c.SetParamValues("c1")

	s.T().Log("partial update must return the merged customer")
	{
		s.Require().NoError(s.handler.Patch(c), "no error must be raised")
		s.Assert().Equal(http.StatusOK, rec.Code, "status must be 200")
	}
}

func (s *customerHandlerTestSuite) TestDeleteByID() {
	s.customerSvcMock.On("DeleteByID", mock.Anything, "c1", testUserID).Return(true, nil).Once()

	c, rec := s.newContext(http.MethodDelete, "/api/customers/c1", "")
	c.SetParamNames("id")
	c.SetParamValues("c1")

	s.T().Log("deletion must return 204 without body")
	{
		s.Require().NoError(s.handler.DeleteByID(c), "no error must be raised")
		s.Assert().Equal(http.StatusNoContent, rec.Code, "status must be 204")
	}
}

func (s *customerHandlerTestSuite) TestDeleteByIDNotFound() {
	s.customerSvcMock.On("DeleteByID", mock.Anything, "missing", testUserID).Return(false, nil).Once()

	c, _ := s.newContext(http.MethodDelete, "/api/customers/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	s.T().Log("deletion of absent customer must map to 404")
	{
		err := s.handler.DeleteByID(c)
		s.Require().Error(err, "handler must raise http error")

		var httpErr *echo.HTTPError
		s.Require().ErrorAs(err, &httpErr, "error must be echo http error")
		s.Assert().Equal(http.StatusNotFound, httpErr.Code, "status must be 404")
	}
}

func (s *customerHandlerTestSuite) TestServiceFailurePropagates() {
	s.customerSvcMock.On("FindAllByUserID", mock.Anything, testUserID).Return(nil, errors.New("storage err")).Once()

	c, _ := s.newContext(http.MethodGet, "/api/customers", "")

	s.T().Log("unexpected service failure must be raised up unchanged")
	{
		err := s.handler.GetAll(c)
		s.Require().Error(err, "error must be raised")

		var httpErr *echo.HTTPError
		s.Assert().False(errors.As(err, &httpErr), "generic failures must not be converted to http errors by the handler")
	}
}

// start customer handler test suite
func TestCustomerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(customerHandlerTestSuite))
}
