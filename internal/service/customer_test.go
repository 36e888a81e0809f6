package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	cacheMocks "github.com/umalmyha/insurance/internal/cache/mocks"
	apperrors "github.com/umalmyha/insurance/internal/errors"
	"github.com/umalmyha/insurance/internal/model"
	rpsMocks "github.com/umalmyha/insurance/internal/repository/mocks"
)

type customerTestData struct {
	ctx      context.Context
	customer *model.Customer
}

type customerServiceTestSuite struct {
	suite.Suite
	customerSvc       CustomerService
	customerRpsMock   *rpsMocks.CustomerRepository
	customerCacheMock *cacheMocks.CustomerCache
	testData          *customerTestData
}

func (s *customerServiceTestSuite) SetupSuite() {
	s.testData = &customerTestData{
		ctx: context.Background(),
		customer: &model.Customer{
			ID:        1,
			FirstName: "Shaik",
			LastName:  "Haasif",
			Email:     "haasif@gmail.com",
			Phone:     "9959075632",
			Address:   "Kadapa, Andhra Pradesh",
		},
	}
}

func (s *customerServiceTestSuite) SetupTest() {
	t := s.T()
	s.customerRpsMock = rpsMocks.NewCustomerRepository(t)
	s.customerCacheMock = cacheMocks.NewCustomerCache(t)
	s.customerSvc = NewCustomerService(s.customerRpsMock, s.customerCacheMock)
}

func (s *customerServiceTestSuite) TestCreateDuplicateEmail() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerRpsMock.On("FindAll", ctx).Return([]model.Customer{*customer}, nil).Once()

	newCustomer := &model.Customer{
		FirstName: "Another",
		LastName:  "Person",
		Email:     "HAASIF@GMAIL.COM",
		Phone:     "9876543210",
		Address:   "Hyderabad, Telangana",
	}

	s.T().Log("email is registered already, matching is case-insensitive")
	{
		_, err := s.customerSvc.Create(ctx, newCustomer)
		s.Require().Error(err, "duplicate email must be rejected")

		var bizErr *apperrors.BusinessErr
		s.Require().ErrorAs(err, &bizErr, "business error must be raised")
		s.Assert().Equal("Email already exists", bizErr.Error())
		s.customerRpsMock.AssertNotCalled(s.T(), "Create", ctx, mock.AnythingOfType("*model.Customer"))
	}
}

func (s *customerServiceTestSuite) TestCreateDuplicatePhone() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerRpsMock.On("FindAll", ctx).Return([]model.Customer{*customer}, nil).Once()

	newCustomer := &model.Customer{
		FirstName: "Another",
		LastName:  "Person",
		Email:     "another@gmail.com",
		Phone:     customer.Phone,
		Address:   "Hyderabad, Telangana",
	}

	s.T().Log("phone is registered already")
	{
		_, err := s.customerSvc.Create(ctx, newCustomer)
		s.Require().Error(err, "duplicate phone must be rejected")

		var bizErr *apperrors.BusinessErr
		s.Require().ErrorAs(err, &bizErr, "business error must be raised")
		s.Assert().Equal("Phone number already exists", bizErr.Error())
	}
}

func (s *customerServiceTestSuite) TestCreateSuccessfully() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerRpsMock.On("FindAll", ctx).Return(nil, nil).Once()
	s.customerRpsMock.On("Create", ctx, customer).Return(nil).Once()

	s.T().Log("customer must be created successfully")
	{
		_, err := s.customerSvc.Create(ctx, customer)
		s.Assert().NoError(err, "no error must be raised")
	}
}

func (s *customerServiceTestSuite) TestDeleteByIDCacheFailed() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerCacheMock.On("EvictByID", ctx, customer.ID).Return(errors.New("cache err")).Once()

	s.T().Log("evict customer from cache failed")
	{
		err := s.customerSvc.DeleteByID(ctx, customer.ID)
		s.Assert().Error(err, "cache raised error - error must be raised up")
		s.customerRpsMock.AssertNotCalled(s.T(), "DeleteByID", ctx, customer.ID)
	}
}

func (s *customerServiceTestSuite) TestDeleteByIDNotFound() {
	ctx := s.testData.ctx

	s.customerCacheMock.On("EvictByID", ctx, 99).Return(nil).Once()
	s.customerRpsMock.On("DeleteByID", ctx, 99).Return(false, nil).Once()

	s.T().Log("customer is missing in primary datasource")
	{
		err := s.customerSvc.DeleteByID(ctx, 99)
		s.Require().Error(err, "missing customer must be reported")

		var notFoundErr *apperrors.EntryNotFoundErr
		s.Require().ErrorAs(err, &notFoundErr, "not found error must be raised")
		s.Assert().Equal("Customer with ID 99 not found", notFoundErr.Error())
	}
}

func (s *customerServiceTestSuite) TestDeleteByIDSuccessfully() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	s.customerCacheMock.On("EvictByID", ctx, customer.ID).Return(nil).Once()
	s.customerRpsMock.On("DeleteByID", ctx, customer.ID).Return(true, nil).Once()

	s.T().Log("deleted successfully")
	{
		err := s.customerSvc.DeleteByID(ctx, customer.ID)
		s.Assert().NoError(err, "no error must be raised")
		s.customerRpsMock.AssertCalled(s.T(), "DeleteByID", ctx, customer.ID)
	}
}

func (s *customerServiceTestSuite) TestFindAllSuccessfully() {
	ctx := s.testData.ctx
	customer := s.testData.customer

	customers := []model.Customer{*customer}

	s.customerRpsMock.On("FindAll", ctx).Return(customers, nil).Once()

	s.T().Log("customers must be found from data source")
	{
		found, err := s.customerSvc.FindAll(ctx)
		s.Assert().NoError(err, "no error must be raised")
		s.Assert().Len(found, 1, "single customer must be found")
	}
}

// start customer service test suite
func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(customerServiceTestSuite))
}
