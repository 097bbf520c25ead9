package rewards

import (
	"testing"

	"github.com/blockseblock/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCourse builds a course with five lessons across two chapters.
// Chapter rewards sum to 155, so course completion is worth 15 tokens.
func newTestCourse() *models.Course {
	return &models.Course{
		ID:    7,
		Title: "Blockchain Fundamentals",
		Chapters: []models.Chapter{
			{
				ID:          1,
				Title:       "Introduction",
				TokenReward: 80,
				Lessons: []models.Lesson{
					{ID: 1, Title: "What is Blockchain?", TokenReward: 20, Content: models.VideoContent{VideoURL: "/uploads/intro.mp4"}},
					{ID: 2, Title: "History of Blockchain", TokenReward: 15, Content: models.ReadingContent{Body: "..."}},
					{ID: 3, Title: "Quiz: Blockchain Basics", TokenReward: 40, Content: models.QuizContent{Quiz: models.Quiz{
						Title: "Basics",
						Questions: []models.Question{
							{Question: "What is a blockchain?", Answers: []string{"A coin", "A distributed ledger"}, CorrectAnswer: 1},
						},
					}}},
				},
			},
			{
				ID:          2,
				Title:       "Cryptography",
				TokenReward: 75,
				Lessons: []models.Lesson{
					{ID: 4, Title: "Creating Keys", TokenReward: 50, Content: models.ExerciseContent{Instructions: "Generate a key pair"}},
					{ID: 5, Title: "Lab: Signatures", TokenReward: 60, Content: models.LabContent{Instructions: "Sign a message"}},
				},
			},
		},
	}
}

func TestNewSession(t *testing.T) {
	tests := []struct {
		name          string
		course        *models.Course
		expectedError error
	}{
		{name: "success", course: newTestCourse()},
		{name: "nil course", course: nil, expectedError: models.ErrCourseNotFound},
		{name: "course without lessons", course: &models.Course{ID: 1, Chapters: []models.Chapter{{ID: 1}}}, expectedError: models.ErrEmptyCourse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSession(tt.course)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, models.ProgressStateNotStarted, s.State())
			assert.Equal(t, 0, s.Percentage())
		})
	}
}

func TestSession_CompleteLesson_DistinctAndIdempotent(t *testing.T) {
	s, err := NewSession(newTestCourse())
	require.NoError(t, err)

	ids := []int{1, 2, 4}
	for i, id := range ids {
		events, err := s.CompleteLesson(id)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, models.RewardKindLesson, events[0].Kind)
		assert.Len(t, s.Progress().CompletedLessons, i+1)
	}

	for _, id := range ids {
		events, err := s.CompleteLesson(id)
		require.NoError(t, err)
		assert.Empty(t, events)
	}
	assert.Equal(t, []int{1, 2, 4}, s.Progress().CompletedLessons)
	assert.Equal(t, models.ProgressStateInProgress, s.State())
	assert.Equal(t, 60, s.Percentage())
}

func TestSession_CompleteLesson_RewardEvent(t *testing.T) {
	s, err := NewSession(newTestCourse())
	require.NoError(t, err)

	events, err := s.CompleteLesson(1)

	require.NoError(t, err)
	assert.Equal(t, []models.RewardEvent{{
		Kind:     models.RewardKindLesson,
		Amount:   20,
		Reason:   "Completed lesson: What is Blockchain?",
		CourseID: 7,
		LessonID: 1,
	}}, events)
}

func TestSession_CompleteLesson_UnknownLesson(t *testing.T) {
	s, err := NewSession(newTestCourse())
	require.NoError(t, err)

	events, err := s.CompleteLesson(99)

	assert.ErrorIs(t, err, models.ErrLessonNotFound)
	assert.Nil(t, events)
	assert.Equal(t, models.ProgressStateNotStarted, s.State())
}

func TestSession_CourseCompletion(t *testing.T) {
	s, err := NewSession(newTestCourse())
	require.NoError(t, err)

	for _, id := range []int{1, 2, 3, 4} {
		_, err := s.CompleteLesson(id)
		require.NoError(t, err)
	}
	assert.Equal(t, 80, s.Percentage())

	events, err := s.CompleteLesson(5)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, models.RewardKindLesson, events[0].Kind)
	assert.Equal(t, models.RewardEvent{
		Kind:     models.RewardKindCourseCompletion,
		Amount:   15,
		Reason:   "Course completed: Blockchain Fundamentals",
		CourseID: 7,
	}, events[1])
	assert.Equal(t, models.ProgressStateCompleted, s.State())
	assert.Equal(t, 100, s.Percentage())

	// Completed is terminal for rewards
	events, err = s.CompleteLesson(5)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, 100, s.Percentage())
}

func TestSession_ProgressIsFloored(t *testing.T) {
	course := &models.Course{ID: 1, Title: "Three", Chapters: []models.Chapter{{
		ID: 1,
		Lessons: []models.Lesson{
			{ID: 1, TokenReward: 1, Content: models.ReadingContent{}},
			{ID: 2, TokenReward: 1, Content: models.ReadingContent{}},
			{ID: 3, TokenReward: 1, Content: models.ReadingContent{}},
		},
	}}}
	s, err := NewSession(course)
	require.NoError(t, err)

	_, _ = s.CompleteLesson(1)
	assert.Equal(t, 33, s.Percentage())
	_, _ = s.CompleteLesson(2)
	assert.Equal(t, 66, s.Percentage())

	events, err := s.CompleteLesson(3)
	require.NoError(t, err)
	assert.Equal(t, 100, s.Percentage())
	// No chapter rewards, so no completion bonus is emitted
	assert.Len(t, events, 1)
}

func TestSession_CompleteQuiz(t *testing.T) {
	tests := []struct {
		name           string
		lessonID       int
		score          int
		expectedError  error
		expectedKinds  []models.RewardKind
		expectedAmount int
	}{
		{
			name:           "score above threshold earns bonus",
			lessonID:       3,
			score:          85,
			expectedKinds:  []models.RewardKind{models.RewardKindLesson, models.RewardKindQuizBonus},
			expectedAmount: 60,
		},
		{
			name:           "score at threshold earns bonus",
			lessonID:       3,
			score:          80,
			expectedKinds:  []models.RewardKind{models.RewardKindLesson, models.RewardKindQuizBonus},
			expectedAmount: 60,
		},
		{
			name:           "score below threshold",
			lessonID:       3,
			score:          79,
			expectedKinds:  []models.RewardKind{models.RewardKindLesson},
			expectedAmount: 40,
		},
		{name: "not a quiz", lessonID: 1, score: 90, expectedError: models.ErrNotAQuiz},
		{name: "unknown lesson", lessonID: 42, score: 90, expectedError: models.ErrLessonNotFound},
		{name: "negative score", lessonID: 3, score: -1, expectedError: models.ErrInvalidScore},
		{name: "score above 100", lessonID: 3, score: 101, expectedError: models.ErrInvalidScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSession(newTestCourse())
			require.NoError(t, err)

			events, err := s.CompleteQuiz(tt.lessonID, tt.score)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, s.Progress().CompletedLessons)
				return
			}
			require.NoError(t, err)
			kinds := make([]models.RewardKind, 0, len(events))
			total := 0
			for _, ev := range events {
				kinds = append(kinds, ev.Kind)
				total += ev.Amount
			}
			assert.Equal(t, tt.expectedKinds, kinds)
			assert.Equal(t, tt.expectedAmount, total)
			score, ok := s.quizScore(tt.lessonID)
			assert.True(t, ok)
			assert.Equal(t, tt.score, score)
			assert.True(t, s.isCompleted(tt.lessonID))
		})
	}
}

func TestSession_CompleteQuiz_BonusReason(t *testing.T) {
	s, err := NewSession(newTestCourse())
	require.NoError(t, err)

	events, err := s.CompleteQuiz(3, 85)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 40, events[0].Amount)
	assert.Equal(t, 20, events[1].Amount)
	assert.Equal(t, "Quiz bonus (85%): Quiz: Blockchain Basics", events[1].Reason)
	assert.Equal(t, 3, events[1].LessonID)
}

func TestSession_CompleteQuiz_Retake(t *testing.T) {
	s, err := NewSession(newTestCourse())
	require.NoError(t, err)

	events, err := s.CompleteQuiz(3, 50)
	require.NoError(t, err)
	require.Len(t, events, 1)

	// A passing retake earns only the bonus, the base reward was already granted
	events, err = s.CompleteQuiz(3, 90)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.RewardKindQuizBonus, events[0].Kind)
	assert.Equal(t, 20, events[0].Amount)

	// The bonus is granted once per lesson
	events, err = s.CompleteQuiz(3, 100)
	require.NoError(t, err)
	assert.Empty(t, events)

	score, _ := s.quizScore(3)
	assert.Equal(t, 100, score)
	assert.Len(t, s.Progress().CompletedLessons, 1)
}

func TestSession_CompleteQuiz_LastLessonCompletesCourse(t *testing.T) {
	s, err := NewSession(newTestCourse())
	require.NoError(t, err)
	for _, id := range []int{1, 2, 4, 5} {
		_, err := s.CompleteLesson(id)
		require.NoError(t, err)
	}

	events, err := s.CompleteQuiz(3, 100)

	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, models.RewardKindLesson, events[0].Kind)
	assert.Equal(t, models.RewardKindQuizBonus, events[1].Kind)
	assert.Equal(t, models.RewardKindCourseCompletion, events[2].Kind)
	assert.Equal(t, models.ProgressStateCompleted, s.State())
}

func TestSession_ProgressSnapshotIsCopy(t *testing.T) {
	s, err := NewSession(newTestCourse())
	require.NoError(t, err)
	_, err = s.CompleteQuiz(3, 70)
	require.NoError(t, err)

	p := s.Progress()
	p.QuizScores[3] = 0
	p.CompletedLessons[0] = 99

	score, _ := s.quizScore(3)
	assert.Equal(t, 70, score)
	assert.True(t, s.isCompleted(3))
	assert.Equal(t, 5, p.TotalLessons)
	assert.Equal(t, 7, p.CourseID)
}

func TestSession_CompleteQuiz_NoBonusAfterCourseCompleted(t *testing.T) {
	s, err := NewSession(newTestCourse())
	require.NoError(t, err)
	_, err = s.CompleteQuiz(3, 10)
	require.NoError(t, err)
	for _, id := range []int{1, 2, 4, 5} {
		_, err := s.CompleteLesson(id)
		require.NoError(t, err)
	}
	require.Equal(t, models.ProgressStateCompleted, s.State())

	events, err := s.CompleteQuiz(3, 100)

	require.NoError(t, err)
	assert.Empty(t, events)
	score, _ := s.quizScore(3)
	assert.Equal(t, 100, score)
}
