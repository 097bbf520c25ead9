// Package rewards implements the course progress state machine, the token ledger
// and the reward announcement queue. It performs no I/O.
package rewards

import (
	"fmt"
	"sort"

	"github.com/blockseblock/backend/internal/models"
)

const (
	// QuizBonusThreshold is the minimum quiz score that earns a bonus
	QuizBonusThreshold = 80
	// QuizBonusPercent is the bonus share of the lesson reward
	QuizBonusPercent = 50
	// CourseCompletionPercent is the completion share of the course token reward
	CourseCompletionPercent = 10
)

// Session tracks one learner's progress through one course
type Session struct {
	course       *models.Course
	totalLessons int
	completed    map[int]struct{}
	quizScores   map[int]int
	bonusAwarded map[int]struct{}
	state        models.ProgressState
}

// NewSession creates a session in the not-started state
func NewSession(course *models.Course) (*Session, error) {
	if course == nil {
		return nil, models.ErrCourseNotFound
	}
	total := course.TotalLessons()
	if total == 0 {
		return nil, models.ErrEmptyCourse
	}
	return &Session{
		course:       course,
		totalLessons: total,
		completed:    make(map[int]struct{}),
		quizScores:   make(map[int]int),
		bonusAwarded: make(map[int]struct{}),
		state:        models.ProgressStateNotStarted,
	}, nil
}

// CompleteLesson marks a lesson as completed.
// Completing an already completed lesson emits nothing.
func (s *Session) CompleteLesson(lessonID int) ([]models.RewardEvent, error) {
	lesson, ok := s.course.FindLesson(lessonID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", models.ErrLessonNotFound, lessonID)
	}
	return s.complete(lesson, nil), nil
}

// CompleteQuiz records a quiz score and completes the quiz lesson.
// A score of QuizBonusThreshold or more earns a one-time bonus for the lesson,
// unless the course is already completed.
func (s *Session) CompleteQuiz(lessonID, score int) ([]models.RewardEvent, error) {
	lesson, ok := s.course.FindLesson(lessonID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", models.ErrLessonNotFound, lessonID)
	}
	if lesson.Type() != models.LessonTypeQuiz {
		return nil, fmt.Errorf("%w: %d", models.ErrNotAQuiz, lessonID)
	}
	if score < 0 || score > 100 {
		return nil, models.ErrInvalidScore
	}

	s.quizScores[lessonID] = score

	var bonus *models.RewardEvent
	_, awarded := s.bonusAwarded[lessonID]
	if !awarded && score >= QuizBonusThreshold && s.state != models.ProgressStateCompleted {
		s.bonusAwarded[lessonID] = struct{}{}
		bonus = &models.RewardEvent{
			Kind:     models.RewardKindQuizBonus,
			Amount:   lesson.TokenReward * QuizBonusPercent / 100,
			Reason:   fmt.Sprintf("Quiz bonus (%d%%): %s", score, lesson.Title),
			CourseID: s.course.ID,
			LessonID: lesson.ID,
		}
	}
	return s.complete(lesson, bonus), nil
}

// complete performs the completion bookkeeping.
// Events are ordered: base reward, quiz bonus, course completion.
func (s *Session) complete(lesson *models.Lesson, bonus *models.RewardEvent) []models.RewardEvent {
	var events []models.RewardEvent

	if !s.isCompleted(lesson.ID) {
		s.completed[lesson.ID] = struct{}{}
		events = append(events, models.RewardEvent{
			Kind:     models.RewardKindLesson,
			Amount:   lesson.TokenReward,
			Reason:   "Completed lesson: " + lesson.Title,
			CourseID: s.course.ID,
			LessonID: lesson.ID,
		})
	}
	if bonus != nil && bonus.Amount > 0 {
		events = append(events, *bonus)
	}

	if s.state == models.ProgressStateCompleted {
		return events
	}
	if len(s.completed) == s.totalLessons {
		s.state = models.ProgressStateCompleted
		if amount := s.course.TotalTokenReward() * CourseCompletionPercent / 100; amount > 0 {
			events = append(events, models.RewardEvent{
				Kind:     models.RewardKindCourseCompletion,
				Amount:   amount,
				Reason:   "Course completed: " + s.course.Title,
				CourseID: s.course.ID,
			})
		}
	} else if len(s.completed) > 0 {
		s.state = models.ProgressStateInProgress
	}
	return events
}

// State returns the current progress state
func (s *Session) State() models.ProgressState {
	return s.state
}

// Percentage returns the floor-rounded share of completed lessons
func (s *Session) Percentage() int {
	return len(s.completed) * 100 / s.totalLessons
}

// isCompleted reports whether the lesson has been completed
func (s *Session) isCompleted(lessonID int) bool {
	_, ok := s.completed[lessonID]
	return ok
}

// quizScore returns the last recorded score of a quiz lesson
func (s *Session) quizScore(lessonID int) (int, bool) {
	score, ok := s.quizScores[lessonID]
	return score, ok
}

// Progress returns a snapshot of the session
func (s *Session) Progress() models.CourseProgress {
	completed := make([]int, 0, len(s.completed))
	for id := range s.completed {
		completed = append(completed, id)
	}
	sort.Ints(completed)

	scores := make(map[int]int, len(s.quizScores))
	for id, score := range s.quizScores {
		scores[id] = score
	}

	return models.CourseProgress{
		CourseID:         s.course.ID,
		State:            s.state,
		Percentage:       s.Percentage(),
		CompletedLessons: completed,
		TotalLessons:     s.totalLessons,
		QuizScores:       scores,
	}
}
