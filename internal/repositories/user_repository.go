package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/blockseblock/backend/internal/models"
)

// userRepository keeps one profile per principal
type userRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewUserRepository creates a new user repository
func NewUserRepository() *userRepository {
	return &userRepository{users: make(map[string]models.User)}
}

// Upsert applies fn to the principal's profile under the lock and stores the result.
// A principal without a profile starts from an empty student record.
func (r *userRepository) Upsert(ctx context.Context, principal string, fn func(u *models.User)) (*models.User, error) {
	if principal == "" {
		return nil, models.ErrMissingPrincipal
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[principal]
	if !ok {
		user = models.User{Principal: principal, Role: models.RoleStudent}
	}
	fn(&user)
	user.Principal = principal
	r.users[principal] = user

	return &user, nil
}

// GetByPrincipal retrieves the profile registered under principal
func (r *userRepository) GetByPrincipal(ctx context.Context, principal string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[principal]
	if !ok {
		return nil, fmt.Errorf("%w: %q", models.ErrUserNotFound, principal)
	}
	return &user, nil
}

// GetAll returns every profile ordered by principal
func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Principal < users[j].Principal })
	return users, nil
}
