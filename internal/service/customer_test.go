package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/clienthub/clienthub/internal/apperrors"
	"github.com/clienthub/clienthub/internal/model"
	rpsMocks "github.com/clienthub/clienthub/internal/repository/mocks"
)

type customerTestData struct {
	ctx      context.Context
	userID   string
	customer *model.Customer
}

type customerServiceTestSuite struct {
	suite.Suite
	customerSvc     CustomerService
	customerRpsMock *rpsMocks.CustomerRepository
	testData        *customerTestData
}

func (s *customerServiceTestSuite) SetupSuite() {
	phone := "+1 202 555 0134"
	createdAt := time.Date(2023, time.March, 10, 12, 0, 0, 0, time.UTC)

	s.testData = &customerTestData{
		ctx:    context.Background(),
		userID: "0583d7f3-5ae1-416a-92fa-120851905551",
		customer: &model.Customer{
			ID:        "ecc770d9-4576-4f72-affa-8b1454246692",
			UserID:    "0583d7f3-5ae1-416a-92fa-120851905551",
			Name:      "Jane Doe",
			Email:     "jane@x.com",
			Phone:     &phone,
			Company:   nil,
			Status:    model.StatusLead,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
	}
}

func (s *customerServiceTestSuite) SetupTest() {
	s.customerRpsMock = rpsMocks.NewCustomerRepository(s.T())
	s.customerSvc = NewCustomerService(s.customerRpsMock)
}

func (s *customerServiceTestSuite) TestCreateSuccessfully() {
	ctx := s.testData.ctx
	userID := s.testData.userID

	s.customerRpsMock.On("IsEmailUnique", ctx, "jane@x.com", userID, "").Return(true, nil).Once()

	var created *model.Customer
	s.customerRpsMock.On("Create", ctx, mock.AnythingOfType("*model.Customer")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.Customer)
		}).
		Return(nil).Once()

	s.T().Log("customer must be created with generated id, default status and equal timestamps")
	{
		c, err := s.customerSvc.Create(ctx, userID, &model.NewCustomer{
			Name:  "  Jane Doe  ",
			Email: "jane@x.com",
		})
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal(created, c, "created customer must be returned")
		s.Assert().NotEmpty(c.ID, "id must be generated")
		s.Assert().Equal(userID, c.UserID, "customer must be owned by provided user")
		s.Assert().Equal("Jane Doe", c.Name, "name must be trimmed")
		s.Assert().Equal(model.StatusLead, c.Status, "status must default to Lead")
		s.Assert().Nil(c.Phone, "absent phone must stay unset")
		s.Assert().Nil(c.Company, "absent company must stay unset")
		s.Assert().Equal(c.CreatedAt, c.UpdatedAt, "timestamps must be equal on creation")
	}
}

func (s *customerServiceTestSuite) TestCreateBlankOptionalsNormalized() {
	ctx := s.testData.ctx
	userID := s.testData.userID
	blank := "   "

	s.customerRpsMock.On("IsEmailUnique", ctx, "jane@x.com", userID, "").Return(true, nil).Once()
	s.customerRpsMock.On("Create", ctx, mock.AnythingOfType("*model.Customer")).Return(nil).Once()

	s.T().Log("blank optional fields must be stored as no value")
	{
		c, err := s.customerSvc.Create(ctx, userID, &model.NewCustomer{
			Name:    "Jane Doe",
			Email:   "jane@x.com",
			Phone:   &blank,
			Company: &blank,
			Status:  model.StatusActive,
		})
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Nil(c.Phone, "blank phone must be normalized to no value")
		s.Assert().Nil(c.Company, "blank company must be normalized to no value")
		s.Assert().Equal(model.StatusActive, c.Status, "provided status must be kept")
	}
}

func (s *customerServiceTestSuite) TestCreateEmailTaken() {
	ctx := s.testData.ctx
	userID := s.testData.userID

	s.customerRpsMock.On("IsEmailUnique", ctx, "jane@x.com", userID, "").Return(false, nil).Once()

	s.T().Log("creation must fail when another customer of the user holds the email")
	{
		_, err := s.customerSvc.Create(ctx, userID, &model.NewCustomer{Name: "Jane Doe", Email: "jane@x.com"})

		var emailErr *apperrors.EmailTakenErr
		s.Require().Error(err, "uniqueness violation must be raised")
		s.Assert().ErrorAs(err, &emailErr, "error must be typed uniqueness violation")
		s.customerRpsMock.AssertNotCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.Customer"))
	}
}

func (s *customerServiceTestSuite) TestCreateWriteTimeConflict() {
	ctx := s.testData.ctx
	userID := s.testData.userID

	s.customerRpsMock.On("IsEmailUnique", ctx, "jane@x.com", userID, "").Return(true, nil).Once()
	s.customerRpsMock.On("Create", ctx, mock.AnythingOfType("*model.Customer")).
		Return(apperrors.NewEmailTakenErr("jane@x.com")).Once()

	s.T().Log("conflict raised by the storage engine at write time must surface as uniqueness violation")
	{
		_, err := s.customerSvc.Create(ctx, userID, &model.NewCustomer{Name: "Jane Doe", Email: "jane@x.com"})

		var emailErr *apperrors.EmailTakenErr
		s.Require().Error(err, "uniqueness violation must be raised")
		s.Assert().ErrorAs(err, &emailErr, "error must be typed uniqueness violation")
	}
}

func (s *customerServiceTestSuite) TestUpdateNotFound() {
	ctx := s.testData.ctx
	userID := s.testData.userID
	customer := s.testData.customer

	s.customerRpsMock.On("FindByID", ctx, customer.ID, userID).Return(nil, nil).Once()

	s.T().Log("updating a missing or not owned customer must resolve as absent")
	{
		c, err := s.customerSvc.Update(ctx, userID, &model.UpdateCustomer{
			ID:    customer.ID,
			Name:  "Jane Doe",
			Email: "jane@x.com",
		})
		s.Require().NoError(err, "absence is not an error")
		s.Assert().Nil(c, "no customer must be returned")
		s.customerRpsMock.AssertNotCalled(s.T(), "Update", ctx, mock.AnythingOfType("*model.Customer"))
	}
}

func (s *customerServiceTestSuite) TestUpdateKeepsOwnEmail() {
	ctx := s.testData.ctx
	userID := s.testData.userID
	customer := s.testData.customer

	s.customerRpsMock.On("FindByID", ctx, customer.ID, userID).Return(customer, nil).Once()
	s.customerRpsMock.On("IsEmailUnique", ctx, customer.Email, userID, customer.ID).Return(true, nil).Once()
	s.customerRpsMock.On("Update", ctx, mock.AnythingOfType("*model.Customer")).Return(true, nil).Once()

	s.T().Log("update keeping the customer's own email must succeed via the exclude-id path")
	{
		c, err := s.customerSvc.Update(ctx, userID, &model.UpdateCustomer{
			ID:     customer.ID,
			Name:   customer.Name,
			Email:  customer.Email,
			Status: model.StatusActive,
		})
		s.Require().NoError(err, "no error must be raised")
		s.Require().NotNil(c, "updated customer must be returned")
		s.Assert().Equal(model.StatusActive, c.Status, "status must be replaced")
		s.Assert().Equal(customer.CreatedAt, c.CreatedAt, "creation timestamp must be preserved")
		s.Assert().True(c.UpdatedAt.After(c.CreatedAt), "update timestamp must be refreshed")
	}
}

func (s *customerServiceTestSuite) TestUpdateEmailTaken() {
	ctx := s.testData.ctx
	userID := s.testData.userID
	customer := s.testData.customer

	s.customerRpsMock.On("FindByID", ctx, customer.ID, userID).Return(customer, nil).Once()
	s.customerRpsMock.On("IsEmailUnique", ctx, "taken@x.com", userID, customer.ID).Return(false, nil).Once()

	s.T().Log("changing email to one held by another customer of the user must fail")
	{
		_, err := s.customerSvc.Update(ctx, userID, &model.UpdateCustomer{
			ID:    customer.ID,
			Name:  customer.Name,
			Email: "taken@x.com",
		})

		var emailErr *apperrors.EmailTakenErr
		s.Require().Error(err, "uniqueness violation must be raised")
		s.Assert().ErrorAs(err, &emailErr, "error must be typed uniqueness violation")
		s.customerRpsMock.AssertNotCalled(s.T(), "Update", ctx, mock.AnythingOfType("*model.Customer"))
	}
}

func (s *customerServiceTestSuite) TestMergePartialPatch() {
	ctx := s.testData.ctx
	userID := s.testData.userID
	customer := s.testData.customer
	status := model.StatusActive

	s.customerRpsMock.On("FindByID", ctx, customer.ID, userID).Return(customer, nil).Once()
	s.customerRpsMock.On("IsEmailUnique", ctx, customer.Email, userID, customer.ID).Return(true, nil).Once()
	s.customerRpsMock.On("Update", ctx, mock.AnythingOfType("*model.Customer")).Return(true, nil).Once()

	s.T().Log("absent patch fields must leave stored values untouched")
	{
		c, err := s.customerSvc.Merge(ctx, userID, &model.PatchCustomer{
			ID:     customer.ID,
			Status: &status,
		})
		s.Require().NoError(err, "no error must be raised")
		s.Require().NotNil(c, "merged customer must be returned")
		s.Assert().Equal(model.StatusActive, c.Status, "patched status must be applied")
		s.Assert().Equal(customer.Name, c.Name, "name must stay unchanged")
		s.Assert().Equal(customer.Email, c.Email, "email must stay unchanged")
		s.Assert().Equal(customer.Phone, c.Phone, "phone must stay unchanged")
	}
}

func (s *customerServiceTestSuite) TestMergeNotFound() {
	ctx := s.testData.ctx
	userID := s.testData.userID
	customer := s.testData.customer

	s.customerRpsMock.On("FindByID", ctx, customer.ID, userID).Return(nil, nil).Once()

	s.T().Log("patching a missing customer must resolve as absent")
	{
		c, err := s.customerSvc.Merge(ctx, userID, &model.PatchCustomer{ID: customer.ID})
		s.Require().NoError(err, "absence is not an error")
		s.Assert().Nil(c, "no customer must be returned")
	}
}

func (s *customerServiceTestSuite) TestDeleteByID() {
	ctx := s.testData.ctx
	userID := s.testData.userID
	customer := s.testData.customer

	s.customerRpsMock.On("DeleteByID", ctx, customer.ID, userID).Return(true, nil).Once()

	s.T().Log("deletion of existing owned customer must report removal")
	{
		deleted, err := s.customerSvc.DeleteByID(ctx, customer.ID, userID)
		s.Require().NoError(err, "no error must be raised")
		s.Assert().True(deleted, "existing customer must be reported deleted")
	}
}

func (s *customerServiceTestSuite) TestDeleteByIDNotOwned() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerRpsMock.On("DeleteByID", ctx, customer.ID, "another-user").Return(false, nil).Once()

	s.T().Log("deletion of not owned customer must be a no-op")
	{
		deleted, err := s.customerSvc.DeleteByID(ctx, customer.ID, "another-user")
		s.Require().NoError(err, "absence is not an error")
		s.Assert().False(deleted, "nothing must be reported deleted")
	}
}

func (s *customerServiceTestSuite) TestFindAllByUserID() {
	ctx := s.testData.ctx
	userID := s.testData.userID

	customers := []*model.Customer{s.testData.customer}
	s.customerRpsMock.On("FindAllByUserID", ctx, userID).Return(customers, nil).Once()

	s.T().Log("customers must be fetched from repository")
	{
		found, err := s.customerSvc.FindAllByUserID(ctx, userID)
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal(customers, found, "repository result must be returned")
	}
}

func (s *customerServiceTestSuite) TestFindByIDRepositoryFailure() {
	ctx := s.testData.ctx
	userID := s.testData.userID
	customer := s.testData.customer

	s.customerRpsMock.On("FindByID", ctx, customer.ID, userID).Return(nil, errors.New("storage err")).Once()

	s.T().Log("repository failure must be raised up")
	{
		_, err := s.customerSvc.FindByID(ctx, customer.ID, userID)
		s.Assert().Error(err, "storage raised error - error must be raised up")
	}
}

// start customer service test suite
func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(customerServiceTestSuite))
}
