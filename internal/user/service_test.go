package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sportbook/field-booking-backend/internal/auth"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int64) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

func newTestService() (Service, *MockRepository, *MockHasher) {
	repo := new(MockRepository)
	hasher := new(MockHasher)
	jwt := auth.NewJWTManager("test-secret", time.Hour)
	return NewService(repo, hasher, jwt), repo, hasher
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alex", Email: "alex@example.com", Password: "12345",
	})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
	repo.AssertNotCalled(t, "Create")
}

func TestRegisterAssignsDefaultRole(t *testing.T) {
	svc, repo, hasher := newTestService()
	ctx := context.Background()

	hasher.On("Hash", "secret-pass").Return("hashed", nil)
	repo.On("Create", ctx, mock.MatchedBy(func(u *User) bool {
		return u.Email == "alex@example.com" && u.PasswordHash == "hashed" && u.RoleID == DefaultRoleID
	})).Return(nil)

	u, err := svc.Register(ctx, RegisterRequest{
		Username: "alex", Email: "alex@example.com", Password: "secret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultRoleID, u.RoleID)
	repo.AssertExpectations(t)
}

func TestRegisterSurfacesDuplicateEmail(t *testing.T) {
	svc, repo, hasher := newTestService()
	ctx := context.Background()

	hasher.On("Hash", "secret-pass").Return("hashed", nil)
	repo.On("Create", ctx, mock.Anything).Return(ErrEmailAlreadyUsed)

	_, err := svc.Register(ctx, RegisterRequest{
		Username: "alex", Email: "taken@example.com", Password: "secret-pass",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
}

func TestLoginUnknownEmailIsInvalidCredentials(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, ErrNotFound)

	_, err := svc.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongPasswordIsInvalidCredentials(t *testing.T) {
	svc, repo, hasher := newTestService()
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "alex@example.com").
		Return(&User{ID: 1, Email: "alex@example.com", PasswordHash: "hashed"}, nil)
	hasher.On("Compare", "hashed", "wrong").Return(assert.AnError)

	_, err := svc.Login(ctx, LoginRequest{Email: "alex@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginIssuesToken(t *testing.T) {
	svc, repo, hasher := newTestService()
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "alex@example.com").
		Return(&User{ID: 42, Email: "alex@example.com", PasswordHash: "hashed", RoleID: 1}, nil)
	hasher.On("Compare", "hashed", "secret-pass").Return(nil)

	result, err := svc.Login(ctx, LoginRequest{Email: "alex@example.com", Password: "secret-pass"})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	claims, err := auth.NewJWTManager("test-secret", time.Hour).ParseAndValidate(result.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alex@example.com", claims.Email)
}
