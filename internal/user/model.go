package user

import (
	"net/http"
	"time"

	"github.com/sportbook/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "user not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusBadRequest, "email already registered")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrPasswordTooShort   = apperror.New(http.StatusBadRequest, "password must be at least 6 characters")
)

// DefaultRoleID is assigned to newly registered users.
const DefaultRoleID int64 = 1

// User represents an account on the platform.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	RoleID       int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
