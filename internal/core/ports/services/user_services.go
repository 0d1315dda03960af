package services

import (
	"context"

	"github.com/kiranabook/kirana_backend/internal/core/domain"
	"github.com/kiranabook/kirana_backend/internal/dto"
)

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new user with a hashed password.
	// Fails with ErrDuplicate if the email is already registered.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// LoginUser authenticates a user with email and password. Unknown email
	// and wrong password both fail with the same ErrUnauthorized.
	LoginUser(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserWriterSvc
	UserAuthSvc
}
