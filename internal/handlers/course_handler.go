package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/blockseblock/backend/internal/middleware"
	"github.com/blockseblock/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LearningService defines the interface for course and progress operations
type LearningService interface {
	// Method ListCourses returns the course list with lesson and reward totals.
	ListCourses(ctx context.Context) ([]models.CourseListItem, error)
	// Method GetCourse retrieves a course with its chapters and lessons.
	//
	// If the course does not exist, an error wrapping models.ErrCourseNotFound is returned.
	GetCourse(ctx context.Context, courseID int) (*models.Course, error)
	// Method GetProgress returns the principal's progress in a course.
	GetProgress(ctx context.Context, principal string, courseID int) (*models.CourseProgress, error)
	// Method CompleteLesson marks a lesson as completed and credits the earned tokens.
	//
	// "principal" parameter identifies the learner.
	// "courseID" and "lessonID" parameters identify the lesson.
	//
	// If some error will occur, the error will be returned together with "nil" value.
	CompleteLesson(ctx context.Context, principal string, courseID, lessonID int) (*models.CompletionResult, error)
	// Method SubmitQuiz grades the answers of a quiz lesson and credits the earned tokens.
	//
	// "answers" parameter holds one selected answer index per question.
	//
	// If some error will occur, the error will be returned together with "nil" value.
	SubmitQuiz(ctx context.Context, principal string, courseID, lessonID int, answers []int) (*models.QuizResult, error)
}

// CourseHandler handles course browsing and lesson progress requests
type CourseHandler struct {
	BaseHandler
	learningService LearningService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(learningService LearningService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		BaseHandler:     BaseHandler{Logger: logger},
		learningService: learningService,
	}
}

// RegisterRoutes registers all course handler routes
func (h *CourseHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/courses", func(r chi.Router) {
		r.Get("/", h.ListCourses)
		r.Get("/{courseId}", h.GetCourse)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequirePrincipal)
			r.Get("/{courseId}/progress", h.GetProgress)
			r.Post("/{courseId}/lessons/{lessonId}/complete", h.CompleteLesson)
			r.With(middleware.RequestSizeLimit(maxJSONBodySize)).Post("/{courseId}/lessons/{lessonId}/quiz", h.SubmitQuiz)
		})
	})
}

// ListCourses handles GET /api/courses
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {object} models.CoursesResponse
// @Router /api/courses [get]
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.learningService.ListCourses(r.Context())
	if err != nil {
		h.RespondServiceError(w, r, err, "failed to list courses")
		return
	}
	h.RespondJSON(w, http.StatusOK, models.CoursesResponse{Success: true, Courses: courses})
}

// GetCourse handles GET /api/courses/{courseId}
// @Summary Get a course
// @Description Chapters and lessons of a course. Correct quiz answers are not included.
// @Tags courses
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} models.CourseResponse
// @Failure 404 {object} models.ErrorResponse "Course not found"
// @Router /api/courses/{courseId} [get]
func (h *CourseHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	courseID, ok := intParam(r, "courseId")
	if !ok {
		h.RespondError(w, http.StatusNotFound, "Course not found")
		return
	}

	course, err := h.learningService.GetCourse(r.Context(), courseID)
	if err != nil {
		h.RespondServiceError(w, r, err, "failed to get course")
		return
	}
	h.RespondJSON(w, http.StatusOK, models.CourseResponse{Success: true, Course: course})
}

// GetProgress handles GET /api/courses/{courseId}/progress
// @Summary Get course progress
// @Tags progress
// @Produce json
// @Param courseId path int true "Course ID"
// @Param X-Principal header string true "Learner principal"
// @Success 200 {object} models.ProgressResponse
// @Failure 401 {object} models.ErrorResponse "Principal is required"
// @Failure 404 {object} models.ErrorResponse "Course not found"
// @Router /api/courses/{courseId}/progress [get]
func (h *CourseHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	courseID, ok := intParam(r, "courseId")
	if !ok {
		h.RespondError(w, http.StatusNotFound, "Course not found")
		return
	}

	progress, err := h.learningService.GetProgress(r.Context(), middleware.GetPrincipal(r.Context()), courseID)
	if err != nil {
		h.RespondServiceError(w, r, err, "failed to get progress")
		return
	}
	h.RespondJSON(w, http.StatusOK, models.ProgressResponse{Success: true, Progress: progress})
}

// CompleteLesson handles POST /api/courses/{courseId}/lessons/{lessonId}/complete
// @Summary Complete a lesson
// @Description Mark a lesson as completed. Rewards are granted once; repeating the call returns the current state.
// @Tags progress
// @Produce json
// @Param courseId path int true "Course ID"
// @Param lessonId path int true "Lesson ID"
// @Param X-Principal header string true "Learner principal"
// @Success 200 {object} models.CompletionResponse
// @Failure 401 {object} models.ErrorResponse "Principal is required"
// @Failure 404 {object} models.ErrorResponse "Course or lesson not found"
// @Router /api/courses/{courseId}/lessons/{lessonId}/complete [post]
func (h *CourseHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	courseID, lessonID, ok := h.lessonParams(w, r)
	if !ok {
		return
	}
	principal := middleware.GetPrincipal(r.Context())

	result, err := h.learningService.CompleteLesson(r.Context(), principal, courseID, lessonID)
	if err != nil {
		h.RespondServiceError(w, r, err, "failed to complete lesson")
		return
	}

	if len(result.Rewards) > 0 {
		h.Logger.Info("lesson completed",
			zap.String("principal", principal),
			zap.Int("course_id", courseID),
			zap.Int("lesson_id", lessonID),
			zap.Int("balance", result.Balance),
		)
	}
	h.RespondJSON(w, http.StatusOK, models.CompletionResponse{Success: true, Result: result})
}

// SubmitQuiz handles POST /api/courses/{courseId}/lessons/{lessonId}/quiz
// @Summary Submit quiz answers
// @Description Grade the answers and complete the quiz lesson. A score of 80% or more earns a one-time bonus of half the lesson reward.
// @Tags progress
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Param lessonId path int true "Lesson ID"
// @Param X-Principal header string true "Learner principal"
// @Param request body models.SubmitQuizRequest true "Selected answer per question"
// @Success 200 {object} models.QuizResponse
// @Failure 400 {object} models.ErrorResponse "Invalid answers or not a quiz"
// @Failure 401 {object} models.ErrorResponse "Principal is required"
// @Failure 404 {object} models.ErrorResponse "Course or lesson not found"
// @Router /api/courses/{courseId}/lessons/{lessonId}/quiz [post]
func (h *CourseHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	courseID, lessonID, ok := h.lessonParams(w, r)
	if !ok {
		return
	}

	var req models.SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	principal := middleware.GetPrincipal(r.Context())
	result, err := h.learningService.SubmitQuiz(r.Context(), principal, courseID, lessonID, req.Answers)
	if err != nil {
		h.RespondServiceError(w, r, err, "failed to submit quiz")
		return
	}

	h.Logger.Info("quiz submitted",
		zap.String("principal", principal),
		zap.Int("course_id", courseID),
		zap.Int("lesson_id", lessonID),
		zap.Int("score", result.Grade.Score),
	)
	h.RespondJSON(w, http.StatusOK, models.QuizResponse{Success: true, Result: result})
}

func (h *CourseHandler) lessonParams(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	courseID, ok := intParam(r, "courseId")
	if !ok {
		h.RespondError(w, http.StatusNotFound, "Course not found")
		return 0, 0, false
	}
	lessonID, ok := intParam(r, "lessonId")
	if !ok {
		h.RespondError(w, http.StatusNotFound, "Lesson not found")
		return 0, 0, false
	}
	return courseID, lessonID, true
}
