package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kiranabook/kirana_backend/internal/apperrors"
	"github.com/kiranabook/kirana_backend/internal/core/domain"
	portsrepo "github.com/kiranabook/kirana_backend/internal/core/ports/repositories"
	portssvc "github.com/kiranabook/kirana_backend/internal/core/ports/services"
	"github.com/kiranabook/kirana_backend/internal/dto"
	"github.com/kiranabook/kirana_backend/internal/utils"
)

// UserService handles registration and login.
type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) *UserService {
	return &UserService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*UserService)(nil)

// RegisterUser creates a new user with a bcrypt-hashed password. An already
// registered email fails with ErrDuplicate. The repository enforces email
// uniqueness as well, so the pre-check racing a concurrent insert still
// surfaces ErrDuplicate.
func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email in service: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email is already in use", apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = domain.RoleReadOnly
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email is already in use", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}

	return &user, nil
}

// LoginUser authenticates by email and password. Unknown email and wrong
// password return the identical error so callers cannot tell which failed.
func (s *UserService) LoginUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user in service: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	return user, nil
}
