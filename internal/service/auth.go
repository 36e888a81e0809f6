package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/umalmyha/insurance/internal/errors"
	"github.com/umalmyha/insurance/internal/model"
	"github.com/umalmyha/insurance/internal/repository"
)

type AuthService interface {
	Signup(ctx context.Context, u *model.User, password string) (*model.User, error)
	Login(ctx context.Context, email string, password string) (*model.Session, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*model.Session, error)
}

type authService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) AuthService {
	return &authService{userRepo: userRepo, sessionRepo: sessionRepo}
}

func (s *authService) Signup(ctx context.Context, u *model.User, password string) (*model.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewBusinessErr("email", "Email already registered")
	}

	hash, err := model.GeneratePasswordHash(password)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = hash

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, email string, password string) (*model.Session, error) {
	u, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewUnauthorizedErr("Invalid email or password")
	}

	if err := u.VerifyPassword(password); err != nil {
		return nil, errors.NewUnauthorizedErr("Invalid email or password")
	}

	session := &model.Session{
		Token:     uuid.NewString(),
		UserID:    u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		IssuedAt:  time.Now().Unix(),
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.sessionRepo.DeleteByToken(ctx, token); err != nil {
		return err
	}
	return nil
}

func (s *authService) CurrentUser(ctx context.Context, token string) (*model.Session, error) {
	session, err := s.sessionRepo.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, errors.NewUnauthorizedErr("session does not exist or is expired")
	}
	return session, nil
}
