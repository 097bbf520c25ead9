package services

import (
	"context"
	"fmt"

	"github.com/blockseblock/backend/internal/models"
	"github.com/blockseblock/backend/internal/rewards"
)

// CourseCatalog defines read access to the static course and store data
type CourseCatalog interface {
	// GetCourses returns all courses in catalog order
	GetCourses(ctx context.Context) ([]models.Course, error)
	// GetCourseByID retrieves a course by ID
	//
	// Returns an error wrapping models.ErrCourseNotFound if the course does not exist.
	GetCourseByID(ctx context.Context, id int) (*models.Course, error)
	// GetStoreItems returns all store items
	GetStoreItems(ctx context.Context) ([]models.StoreItem, error)
	// GetStoreItemByID retrieves a store item by ID
	//
	// Returns an error wrapping models.ErrItemNotFound if the item does not exist.
	GetStoreItemByID(ctx context.Context, id int) (*models.StoreItem, error)
}

// LearnerRepository defines exclusive access to per-principal learner state
type LearnerRepository interface {
	// Update runs fn with exclusive access to the principal's learner
	//
	// "ctx" is the context for the request.
	// "principal" identifies the learner; an empty principal is rejected.
	// "fn" performs the whole state transition and must not retain the learner.
	//
	// Returns the error returned by fn, if any.
	Update(ctx context.Context, principal string, fn func(*rewards.Learner) error) error
}

// RewardRecorder receives the ledger entries produced by learner actions
type RewardRecorder interface {
	TokensCredited(entries []models.LedgerEntry)
}

// LearningService handles course browsing and lesson progress
type LearningService struct {
	catalog  CourseCatalog
	learners LearnerRepository
	recorder RewardRecorder
}

// NewLearningService creates a new learning service.
// "recorder" may be nil.
func NewLearningService(catalog CourseCatalog, learners LearnerRepository, recorder RewardRecorder) *LearningService {
	return &LearningService{
		catalog:  catalog,
		learners: learners,
		recorder: recorder,
	}
}

// ListCourses returns the course list with lesson and reward totals
func (s *LearningService) ListCourses(ctx context.Context) ([]models.CourseListItem, error) {
	courses, err := s.catalog.GetCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get courses: %w", err)
	}
	items := make([]models.CourseListItem, 0, len(courses))
	for i := range courses {
		items = append(items, courses[i].ListItem())
	}
	return items, nil
}

// GetCourse retrieves a course with its chapters and lessons
func (s *LearningService) GetCourse(ctx context.Context, courseID int) (*models.Course, error) {
	return s.catalog.GetCourseByID(ctx, courseID)
}

// GetProgress returns the principal's progress in a course.
// A course the learner never touched reports not-started.
func (s *LearningService) GetProgress(ctx context.Context, principal string, courseID int) (*models.CourseProgress, error) {
	course, err := s.catalog.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	var progress models.CourseProgress
	err = s.learners.Update(ctx, principal, func(l *rewards.Learner) error {
		session, err := l.Session(course)
		if err != nil {
			return err
		}
		progress = session.Progress()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// CompleteLesson marks a lesson as completed and credits the earned tokens.
// Completing a lesson twice is a no-op that returns the current state.
func (s *LearningService) CompleteLesson(ctx context.Context, principal string, courseID, lessonID int) (*models.CompletionResult, error) {
	course, err := s.catalog.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	var result *models.CompletionResult
	err = s.learners.Update(ctx, principal, func(l *rewards.Learner) error {
		r, err := l.CompleteLesson(course, lessonID)
		result = r
		return err
	})
	if err != nil {
		return nil, err
	}

	s.record(result.Rewards)
	return result, nil
}

// SubmitQuiz grades the answers of a quiz lesson and records the score.
// A score of rewards.QuizBonusThreshold or more earns the one-time quiz bonus.
//
// "answers" holds one selected answer index per question, in question order.
//
// Returns the grade with the resulting progress and rewards, and an error if any.
func (s *LearningService) SubmitQuiz(ctx context.Context, principal string, courseID, lessonID int, answers []int) (*models.QuizResult, error) {
	course, err := s.catalog.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	lesson, ok := course.FindLesson(lessonID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", models.ErrLessonNotFound, lessonID)
	}
	quiz, ok := lesson.Quiz()
	if !ok {
		return nil, fmt.Errorf("%w: %d", models.ErrNotAQuiz, lessonID)
	}

	grade, err := rewards.GradeQuiz(quiz, answers)
	if err != nil {
		return nil, err
	}

	var completion *models.CompletionResult
	err = s.learners.Update(ctx, principal, func(l *rewards.Learner) error {
		r, err := l.CompleteQuiz(course, lessonID, grade.Score)
		completion = r
		return err
	})
	if err != nil {
		return nil, err
	}

	s.record(completion.Rewards)
	return &models.QuizResult{
		Grade:            grade,
		CompletionResult: *completion,
	}, nil
}

func (s *LearningService) record(entries []models.LedgerEntry) {
	if s.recorder != nil && len(entries) > 0 {
		s.recorder.TokensCredited(entries)
	}
}
