package services

import (
	"context"

	"github.com/loretops/finalproject-LPS-sub000/internal/core/domain"
	"github.com/loretops/finalproject-LPS-sub000/internal/dto"
)

// UserSvcFacade defines the user surface of the platform: credential checks
// for login, profile lookups, and manager-driven member registration.
type UserSvcFacade interface {
	// Authenticate verifies the email/password pair and returns the user.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// CreateUser registers a new club member on behalf of a manager. The
	// password is hashed before storage.
	CreateUser(ctx context.Context, req dto.CreateUserRequest, createdBy string) (*domain.User, error)
}
