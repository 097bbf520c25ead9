package rewards

import (
	"fmt"
	"time"

	"github.com/blockseblock/backend/internal/models"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Clock returns the current time
type Clock func() time.Time

// Ledger holds a token balance and its history, most recent entry first.
// The balance always equals the sum of all entry amounts.
type Ledger struct {
	balance int
	entries []models.LedgerEntry
	now     Clock
}

// NewLedger creates an empty ledger
func NewLedger(now Clock) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{now: now}
}

// Credit adds tokens to the balance and records the movement
func (l *Ledger) Credit(amount int, reason string, courseID, lessonID *int) (models.LedgerEntry, error) {
	if amount <= 0 {
		return models.LedgerEntry{}, models.ErrInvalidAmount
	}
	return l.record(models.RewardKindCredit, amount, reason, courseID, lessonID), nil
}

// Apply credits every reward event in order and returns the recorded entries
func (l *Ledger) Apply(events []models.RewardEvent) []models.LedgerEntry {
	entries := make([]models.LedgerEntry, 0, len(events))
	for _, ev := range events {
		if ev.Amount <= 0 {
			continue
		}
		courseID := ev.CourseID
		var lessonID *int
		if ev.LessonID != 0 {
			id := ev.LessonID
			lessonID = &id
		}
		entries = append(entries, l.record(ev.Kind, ev.Amount, ev.Reason, &courseID, lessonID))
	}
	return entries
}

// Redeem spends tokens on a store item.
// It fails without changing anything when the balance does not cover the cost.
func (l *Ledger) Redeem(item models.StoreItem) (models.LedgerEntry, error) {
	if item.TokenCost <= 0 {
		return models.LedgerEntry{}, models.ErrInvalidAmount
	}
	if l.balance < item.TokenCost {
		return models.LedgerEntry{}, fmt.Errorf("%w: have %d, need %d", models.ErrInsufficientBalance, l.balance, item.TokenCost)
	}
	return l.record(models.RewardKindRedemption, -item.TokenCost, "Redeemed: "+item.Name, nil, nil), nil
}

func (l *Ledger) record(kind models.RewardKind, amount int, reason string, courseID, lessonID *int) models.LedgerEntry {
	entry := models.LedgerEntry{
		ID:       uuid.New().String(),
		Kind:     kind,
		Amount:   amount,
		Reason:   reason,
		Date:     l.now().UTC().Format(dateLayout),
		CourseID: courseID,
		LessonID: lessonID,
	}
	l.entries = append([]models.LedgerEntry{entry}, l.entries...)
	l.balance += amount
	return entry
}

// Balance returns the current token balance
func (l *Ledger) Balance() int {
	return l.balance
}

// History returns a copy of the entries, most recent first
func (l *Ledger) History() []models.LedgerEntry {
	history := make([]models.LedgerEntry, len(l.entries))
	copy(history, l.entries)
	return history
}
