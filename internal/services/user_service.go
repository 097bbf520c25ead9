package services

import (
	"context"
	"fmt"
	"regexp"

	"github.com/blockseblock/backend/internal/models"
)

// emailRegex validates email format
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// UserRepository is the profile store used by UserService
type UserRepository interface {
	Upsert(ctx context.Context, principal string, fn func(u *models.User)) (*models.User, error)
	GetByPrincipal(ctx context.Context, principal string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
}

// UserService manages the profiles registered under principals
type UserService struct {
	repo UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register stores the principal's profile as a student.
// Registering again replaces the name and email and resets the role.
func (s *UserService) Register(ctx context.Context, principal string, req models.UserProfileRequest) (*models.User, error) {
	if err := validateProfile(&req); err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, principal, func(u *models.User) {
		u.Name = req.Name
		u.Email = req.Email
		u.Role = models.RoleStudent
	})
}

// Get returns the principal's profile.
//
// Returns an error wrapping models.ErrUserNotFound if the principal never registered.
func (s *UserService) Get(ctx context.Context, principal string) (*models.User, error) {
	if principal == "" {
		return nil, models.ErrMissingPrincipal
	}
	return s.repo.GetByPrincipal(ctx, principal)
}

// Update changes the principal's name and email, registering the principal as a student
// when no profile exists yet. The role is never changed.
func (s *UserService) Update(ctx context.Context, principal string, req models.UserProfileRequest) (*models.User, error) {
	if err := validateProfile(&req); err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, principal, func(u *models.User) {
		u.Name = req.Name
		u.Email = req.Email
	})
}

// List returns every registered profile ordered by principal
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

func validateProfile(req *models.UserProfileRequest) error {
	req.Normalize()
	if req.Name == "" {
		return models.ErrInvalidName
	}
	if !emailRegex.MatchString(req.Email) {
		return fmt.Errorf("%w: %q", models.ErrInvalidEmail, req.Email)
	}
	return nil
}
