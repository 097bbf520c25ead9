package rewards

import (
	"time"

	"github.com/blockseblock/backend/internal/models"
	"github.com/google/uuid"
)

// AnnouncementQueue is an ordered list of pending "reward granted" notifications.
// Rewards earned by the same action become due one delay apart, so a quiz bonus
// is announced separately after the base reward.
type AnnouncementQueue struct {
	pending []models.Announcement
	delay   time.Duration
}

// NewAnnouncementQueue creates an empty queue
func NewAnnouncementQueue(delay time.Duration) *AnnouncementQueue {
	if delay < 0 {
		delay = 0
	}
	return &AnnouncementQueue{delay: delay}
}

// Enqueue schedules one announcement per ledger entry, starting at now
func (q *AnnouncementQueue) Enqueue(entries []models.LedgerEntry, now time.Time) {
	readyAt := now
	if n := len(q.pending); n > 0 && q.pending[n-1].ReadyAt.After(readyAt) {
		readyAt = q.pending[n-1].ReadyAt.Add(q.delay)
	}
	for i, entry := range entries {
		if i > 0 {
			readyAt = readyAt.Add(q.delay)
		}
		q.pending = append(q.pending, models.Announcement{
			ID:      uuid.New().String(),
			Amount:  entry.Amount,
			Reason:  entry.Reason,
			ReadyAt: readyAt,
		})
	}
}

// Due removes and returns the announcements that are ready at now, in order.
// Draining stops at the first announcement that is not ready yet.
func (q *AnnouncementQueue) Due(now time.Time) []models.Announcement {
	n := 0
	for n < len(q.pending) && !q.pending[n].ReadyAt.After(now) {
		n++
	}
	due := make([]models.Announcement, n)
	copy(due, q.pending[:n])
	q.pending = q.pending[n:]
	return due
}

// Pending returns the number of announcements not yet drained
func (q *AnnouncementQueue) Pending() int {
	return len(q.pending)
}
