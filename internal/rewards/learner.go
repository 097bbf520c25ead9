package rewards

import (
	"time"

	"github.com/blockseblock/backend/internal/models"
)

// Learner aggregates everything the engine tracks for one principal:
// a session per course, the token ledger and the announcement queue.
type Learner struct {
	Principal     string
	Ledger        *Ledger
	Announcements *AnnouncementQueue

	sessions map[int]*Session
	now      Clock
}

// NewLearner creates a learner with an empty ledger
func NewLearner(principal string, announcementDelay time.Duration, now Clock) *Learner {
	if now == nil {
		now = time.Now
	}
	return &Learner{
		Principal:     principal,
		Ledger:        NewLedger(now),
		Announcements: NewAnnouncementQueue(announcementDelay),
		sessions:      make(map[int]*Session),
		now:           now,
	}
}

// Session returns the learner's session for a course, starting one if needed
func (l *Learner) Session(course *models.Course) (*Session, error) {
	if course == nil {
		return nil, models.ErrCourseNotFound
	}
	if s, ok := l.sessions[course.ID]; ok {
		return s, nil
	}
	s, err := NewSession(course)
	if err != nil {
		return nil, err
	}
	l.sessions[course.ID] = s
	return s, nil
}

// CompleteLesson completes a lesson and credits the earned rewards
func (l *Learner) CompleteLesson(course *models.Course, lessonID int) (*models.CompletionResult, error) {
	s, err := l.Session(course)
	if err != nil {
		return nil, err
	}
	events, err := s.CompleteLesson(lessonID)
	if err != nil {
		return nil, err
	}
	return l.settle(s, events), nil
}

// CompleteQuiz records a quiz score and credits the earned rewards
func (l *Learner) CompleteQuiz(course *models.Course, lessonID, score int) (*models.CompletionResult, error) {
	s, err := l.Session(course)
	if err != nil {
		return nil, err
	}
	events, err := s.CompleteQuiz(lessonID, score)
	if err != nil {
		return nil, err
	}
	return l.settle(s, events), nil
}

func (l *Learner) settle(s *Session, events []models.RewardEvent) *models.CompletionResult {
	entries := l.Ledger.Apply(events)
	l.Announcements.Enqueue(entries, l.now())
	return &models.CompletionResult{
		Progress: s.Progress(),
		Rewards:  entries,
		Balance:  l.Ledger.Balance(),
	}
}

// Redeem spends tokens on a store item
func (l *Learner) Redeem(item models.StoreItem) (*models.RedemptionResult, error) {
	entry, err := l.Ledger.Redeem(item)
	if err != nil {
		return nil, err
	}
	return &models.RedemptionResult{
		Item:    item,
		Entry:   entry,
		Balance: l.Ledger.Balance(),
	}, nil
}

// DueAnnouncements drains the announcements that are ready now
func (l *Learner) DueAnnouncements() []models.Announcement {
	return l.Announcements.Due(l.now())
}

// Wallet returns a snapshot of the learner's balance and history
func (l *Learner) Wallet() *models.Wallet {
	return &models.Wallet{
		Principal: l.Principal,
		Balance:   l.Ledger.Balance(),
		History:   l.Ledger.History(),
	}
}
