package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blockseblock/backend/internal/middleware"
	"github.com/blockseblock/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockLearningService is a mock implementation of LearningService
type mockLearningService struct {
	err           error
	lastPrincipal string
	lastCourseID  int
	lastLessonID  int
	lastAnswers   []int
}

func (m *mockLearningService) ListCourses(ctx context.Context) ([]models.CourseListItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []models.CourseListItem{{ID: 1, Title: "Blockchain Fundamentals", TotalLessons: 12}}, nil
}

func (m *mockLearningService) GetCourse(ctx context.Context, courseID int) (*models.Course, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Course{ID: courseID, Title: "Blockchain Fundamentals"}, nil
}

func (m *mockLearningService) GetProgress(ctx context.Context, principal string, courseID int) (*models.CourseProgress, error) {
	m.lastPrincipal = principal
	if m.err != nil {
		return nil, m.err
	}
	return &models.CourseProgress{CourseID: courseID, State: models.ProgressStateNotStarted, CompletedLessons: []int{}, TotalLessons: 12}, nil
}

func (m *mockLearningService) CompleteLesson(ctx context.Context, principal string, courseID, lessonID int) (*models.CompletionResult, error) {
	m.lastPrincipal, m.lastCourseID, m.lastLessonID = principal, courseID, lessonID
	if m.err != nil {
		return nil, m.err
	}
	return &models.CompletionResult{
		Progress: models.CourseProgress{CourseID: courseID, State: models.ProgressStateInProgress, Percentage: 8},
		Rewards:  []models.LedgerEntry{{Kind: models.RewardKindLesson, Amount: 20}},
		Balance:  20,
	}, nil
}

func (m *mockLearningService) SubmitQuiz(ctx context.Context, principal string, courseID, lessonID int, answers []int) (*models.QuizResult, error) {
	m.lastPrincipal, m.lastCourseID, m.lastLessonID, m.lastAnswers = principal, courseID, lessonID, answers
	if m.err != nil {
		return nil, m.err
	}
	return &models.QuizResult{
		Grade:            models.QuizGrade{Score: 100, Correct: 2, Total: 2},
		CompletionResult: models.CompletionResult{Balance: 60},
	}, nil
}

func newCourseTestRouter(svc LearningService) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Principal)
	NewCourseHandler(svc, zap.NewNop()).RegisterRoutes(r)
	return r
}

func TestCourseHandler_Public(t *testing.T) {
	router := newCourseTestRouter(&mockLearningService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/courses", nil))
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeBody[models.CoursesResponse](t, w)
	assert.True(t, list.Success)
	assert.Equal(t, 12, list.Courses[0].TotalLessons)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/courses/2", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decodeBody[models.CourseResponse](t, w).Course.ID)

	missing := newCourseTestRouter(&mockLearningService{err: models.ErrCourseNotFound})
	w = httptest.NewRecorder()
	missing.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/courses/9", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Course not found", decodeBody[models.ErrorResponse](t, w).Error)
}

func TestCourseHandler_RequiresPrincipal(t *testing.T) {
	tests := []struct {
		method string
		path   string
		body   string
	}{
		{method: http.MethodGet, path: "/api/courses/1/progress"},
		{method: http.MethodPost, path: "/api/courses/1/lessons/1/complete"},
		{method: http.MethodPost, path: "/api/courses/1/lessons/3/quiz", body: `{"answers":[1]}`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			svc := &mockLearningService{}
			w := httptest.NewRecorder()

			newCourseTestRouter(svc).ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.False(t, decodeBody[models.ErrorResponse](t, w).Success)
			assert.Zero(t, svc.lastCourseID)
		})
	}
}

func TestCourseHandler_CompleteLesson(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		svc            *mockLearningService
		expectedStatus int
		expectedError  string
	}{
		{name: "success", path: "/api/courses/1/lessons/4/complete", svc: &mockLearningService{}, expectedStatus: http.StatusOK},
		{name: "unknown lesson", path: "/api/courses/1/lessons/99/complete", svc: &mockLearningService{err: models.ErrLessonNotFound}, expectedStatus: http.StatusNotFound, expectedError: "Lesson not found"},
		{name: "bad lesson id", path: "/api/courses/1/lessons/x/complete", svc: &mockLearningService{}, expectedStatus: http.StatusNotFound, expectedError: "Lesson not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			req.Header.Set(middleware.PrincipalHeader, "2vxsx-fae")
			w := httptest.NewRecorder()

			newCourseTestRouter(tt.svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeBody[models.ErrorResponse](t, w).Error)
				return
			}
			resp := decodeBody[models.CompletionResponse](t, w)
			assert.True(t, resp.Success)
			assert.Equal(t, 20, resp.Result.Balance)
			assert.Equal(t, "2vxsx-fae", tt.svc.lastPrincipal)
			assert.Equal(t, 1, tt.svc.lastCourseID)
			assert.Equal(t, 4, tt.svc.lastLessonID)
		})
	}
}

func TestCourseHandler_SubmitQuiz(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		svc            *mockLearningService
		expectedStatus int
		expectedError  string
	}{
		{name: "success", body: `{"answers":[1,0]}`, svc: &mockLearningService{}, expectedStatus: http.StatusOK},
		{name: "invalid json", body: `{"answers":`, svc: &mockLearningService{}, expectedStatus: http.StatusBadRequest, expectedError: "Invalid request body"},
		{name: "not a quiz", body: `{"answers":[1]}`, svc: &mockLearningService{err: models.ErrNotAQuiz}, expectedStatus: http.StatusBadRequest, expectedError: "Lesson is not a quiz"},
		{name: "answer count mismatch", body: `{"answers":[1]}`, svc: &mockLearningService{err: models.ErrInvalidAnswers}, expectedStatus: http.StatusBadRequest, expectedError: "Answers do not match the quiz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/courses/1/lessons/3/quiz", strings.NewReader(tt.body))
			req.Header.Set(middleware.PrincipalHeader, "2vxsx-fae")
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			newCourseTestRouter(tt.svc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeBody[models.ErrorResponse](t, w).Error)
				return
			}
			resp := decodeBody[models.QuizResponse](t, w)
			assert.Equal(t, 100, resp.Result.Grade.Score)
			assert.Equal(t, 60, resp.Result.Balance)
			assert.Equal(t, []int{1, 0}, tt.svc.lastAnswers)
		})
	}
}

func TestCourseHandler_GetProgress(t *testing.T) {
	svc := &mockLearningService{}
	req := httptest.NewRequest(http.MethodGet, "/api/courses/1/progress", nil)
	req.Header.Set(middleware.PrincipalHeader, "2vxsx-fae")
	w := httptest.NewRecorder()

	newCourseTestRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[models.ProgressResponse](t, w)
	assert.Equal(t, models.ProgressStateNotStarted, resp.Progress.State)
	assert.Equal(t, "2vxsx-fae", svc.lastPrincipal)
}
