package user

import (
	"context"
	"errors"

	"github.com/sportbook/field-booking-backend/internal/auth"
)

type RegisterRequest struct {
	Username string
	Email    string
	Password string
}

type LoginRequest struct {
	Email    string
	Password string
}

// LoginResult carries the signed token together with the account it
// identifies.
type LoginResult struct {
	Token string
	User  *User
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	GetByID(ctx context.Context, id int64) (*User, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
	jwt    *auth.JWTManager
}

func NewService(repo Repository, hasher auth.PasswordHasher, jwt *auth.JWTManager) Service {
	return &service{
		repo:   repo,
		hasher: hasher,
		jwt:    jwt,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if len(req.Password) < 6 {
		return nil, ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		RoleID:       DefaultRoleID,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(u.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAccessToken(u.ID, u.Email, u.RoleID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, User: u}, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
