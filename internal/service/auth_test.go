package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	apperrors "github.com/umalmyha/insurance/internal/errors"
	"github.com/umalmyha/insurance/internal/model"
	"github.com/umalmyha/insurance/internal/repository/mocks"
)

const testPassword = "admin123"

type authServiceTestSuite struct {
	suite.Suite
	authSvc        AuthService
	userRpsMock    *mocks.UserRepository
	sessionRpsMock *mocks.SessionRepository
	ctx            context.Context
	user           *model.User
}

func (s *authServiceTestSuite) SetupSuite() {
	hash, err := model.GeneratePasswordHash(testPassword)
	s.Require().NoError(err, "failed to hash test password")

	s.ctx = context.Background()
	s.user = &model.User{
		ID:           1,
		Email:        "admin@test.com",
		PasswordHash: hash,
		FirstName:    "Admin",
		LastName:     "User",
	}
}

func (s *authServiceTestSuite) SetupTest() {
	t := s.T()
	s.userRpsMock = mocks.NewUserRepository(t)
	s.sessionRpsMock = mocks.NewSessionRepository(t)
	s.authSvc = NewAuthService(s.userRpsMock, s.sessionRpsMock)
}

func (s *authServiceTestSuite) TestSignupDuplicateEmail() {
	s.userRpsMock.On("FindByEmail", s.ctx, s.user.Email).Return(s.user, nil).Once()

	newUser := &model.User{Email: s.user.Email, FirstName: "Someone", LastName: "Else"}

	s.T().Log("email is taken already")
	{
		_, err := s.authSvc.Signup(s.ctx, newUser, "secret123")
		s.Require().Error(err, "duplicate email must be rejected")

		var bizErr *apperrors.BusinessErr
		s.Require().ErrorAs(err, &bizErr, "business error must be raised")
		s.Assert().Equal("Email already registered", bizErr.Error())
		s.userRpsMock.AssertNotCalled(s.T(), "Create", s.ctx, mock.AnythingOfType("*model.User"))
	}
}

func (s *authServiceTestSuite) TestSignupSuccessfully() {
	newUser := &model.User{Email: "newuser@test.com", FirstName: "New", LastName: "User"}

	s.userRpsMock.On("FindByEmail", s.ctx, newUser.Email).Return(nil, nil).Once()
	s.userRpsMock.On("Create", s.ctx, newUser).Return(nil).Once()

	s.T().Log("user must be registered with hashed password")
	{
		created, err := s.authSvc.Signup(s.ctx, newUser, "secret123")
		s.Require().NoError(err, "no error must be raised")
		s.Require().NotEmpty(created.PasswordHash, "password hash must be populated")
		s.Assert().NoError(created.VerifyPassword("secret123"), "stored hash must verify the raw password")
	}
}

func (s *authServiceTestSuite) TestLoginUnknownEmail() {
	s.userRpsMock.On("FindByEmail", s.ctx, "ghost@test.com").Return(nil, nil).Once()

	s.T().Log("unknown email must not reveal whether account exists")
	{
		_, err := s.authSvc.Login(s.ctx, "ghost@test.com", testPassword)
		s.Require().Error(err, "unknown email must be rejected")

		var unauthErr *apperrors.UnauthorizedErr
		s.Require().ErrorAs(err, &unauthErr, "unauthorized error must be raised")
		s.Assert().Equal("Invalid email or password", unauthErr.Error())
		s.sessionRpsMock.AssertNotCalled(s.T(), "Create", s.ctx, mock.AnythingOfType("*model.Session"))
	}
}

func (s *authServiceTestSuite) TestLoginWrongPassword() {
	s.userRpsMock.On("FindByEmail", s.ctx, s.user.Email).Return(s.user, nil).Once()

	s.T().Log("wrong password must produce the same message as unknown email")
	{
		_, err := s.authSvc.Login(s.ctx, s.user.Email, "wrong-password")
		s.Require().Error(err, "wrong password must be rejected")

		var unauthErr *apperrors.UnauthorizedErr
		s.Require().ErrorAs(err, &unauthErr, "unauthorized error must be raised")
		s.Assert().Equal("Invalid email or password", unauthErr.Error())
	}
}

func (s *authServiceTestSuite) TestLoginSuccessfully() {
	s.userRpsMock.On("FindByEmail", s.ctx, s.user.Email).Return(s.user, nil).Once()
	s.sessionRpsMock.On("Create", s.ctx, mock.AnythingOfType("*model.Session")).Return(nil).Once()

	s.T().Log("session must be issued on valid credentials")
	{
		session, err := s.authSvc.Login(s.ctx, s.user.Email, testPassword)
		s.Require().NoError(err, "no error must be raised")
		s.Assert().NotEmpty(session.Token, "session token must be generated")
		s.Assert().Equal(s.user.Email, session.Email, "session must carry user email")
		s.Assert().Equal(s.user.ID, session.UserID, "session must carry user id")
	}
}

func (s *authServiceTestSuite) TestLogout() {
	s.sessionRpsMock.On("DeleteByToken", s.ctx, "some-token").Return(nil).Once()

	s.T().Log("logout removes the session")
	{
		err := s.authSvc.Logout(s.ctx, "some-token")
		s.Assert().NoError(err, "no error must be raised")
	}
}

func (s *authServiceTestSuite) TestCurrentUserExpired() {
	s.sessionRpsMock.On("FindByToken", s.ctx, "stale-token").Return(nil, nil).Once()

	s.T().Log("missing session must be reported as unauthorized")
	{
		_, err := s.authSvc.CurrentUser(s.ctx, "stale-token")
		s.Require().Error(err, "stale token must be rejected")

		var unauthErr *apperrors.UnauthorizedErr
		s.Assert().ErrorAs(err, &unauthErr, "unauthorized error must be raised")
	}
}

func (s *authServiceTestSuite) TestCurrentUser() {
	session := &model.Session{Token: "live-token", UserID: s.user.ID, Email: s.user.Email}

	s.sessionRpsMock.On("FindByToken", s.ctx, session.Token).Return(session, nil).Once()

	s.T().Log("live session must be returned")
	{
		found, err := s.authSvc.CurrentUser(s.ctx, session.Token)
		s.Require().NoError(err, "no error must be raised")
		s.Assert().Equal(session.Email, found.Email, "session email must match")
	}
}

// start auth service test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(authServiceTestSuite))
}
