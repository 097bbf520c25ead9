package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/blockseblock/backend/internal/models"
	"github.com/blockseblock/backend/internal/rewards"
)

// learnerRepository owns one rewards.Learner per principal
type learnerRepository struct {
	mu                sync.Mutex
	learners          map[string]*rewards.Learner
	announcementDelay time.Duration
	now               rewards.Clock
}

// NewLearnerRepository creates a new learner repository.
// "announcementDelay" spaces the reward announcements of a single action.
func NewLearnerRepository(announcementDelay time.Duration, now rewards.Clock) *learnerRepository {
	return &learnerRepository{
		learners:          make(map[string]*rewards.Learner),
		announcementDelay: announcementDelay,
		now:               now,
	}
}

// Update runs fn with exclusive access to the principal's learner, creating it on first use
func (r *learnerRepository) Update(ctx context.Context, principal string, fn func(*rewards.Learner) error) error {
	if principal == "" {
		return models.ErrMissingPrincipal
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	learner, ok := r.learners[principal]
	if !ok {
		learner = rewards.NewLearner(principal, r.announcementDelay, r.now)
		r.learners[principal] = learner
	}
	return fn(learner)
}

// count returns the number of known learners
func (r *learnerRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.learners)
}
