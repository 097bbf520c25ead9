// Package handlers implements the HTTP API
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/blockseblock/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BaseHandler provides the response helpers shared by all handlers
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends the error envelope {"success": false, "error": message}
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, models.ErrorResponse{Success: false, Error: message})
}

// errorMapping pairs a sentinel error with its HTTP status and client message
type errorMapping struct {
	err     error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{models.ErrNotFound, http.StatusNotFound, "Video not found"},
	{models.ErrInvalidFileType, http.StatusBadRequest, "Only video files are allowed!"},
	{models.ErrNoFile, http.StatusBadRequest, "No video file provided"},
	{models.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "File too large"},
	{models.ErrInvalidFilename, http.StatusNotFound, "File not found"},
	{models.ErrCourseNotFound, http.StatusNotFound, "Course not found"},
	{models.ErrLessonNotFound, http.StatusNotFound, "Lesson not found"},
	{models.ErrItemNotFound, http.StatusNotFound, "Store item not found"},
	{models.ErrNotAQuiz, http.StatusBadRequest, "Lesson is not a quiz"},
	{models.ErrInvalidScore, http.StatusBadRequest, "Score must be between 0 and 100"},
	{models.ErrInvalidAnswers, http.StatusBadRequest, "Answers do not match the quiz"},
	{models.ErrEmptyCourse, http.StatusUnprocessableEntity, "Course has no lessons"},
	{models.ErrInsufficientBalance, http.StatusConflict, "Insufficient token balance"},
	{models.ErrMissingPrincipal, http.StatusUnauthorized, "Principal is required"},
	{models.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{models.ErrInvalidName, http.StatusBadRequest, "Name is required"},
	{models.ErrInvalidEmail, http.StatusBadRequest, "Invalid email format"},
}

// RespondServiceError maps a service error to its status code and message.
// Unclassified errors are logged and reported as 500.
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			h.Logger.Debug(msg, zap.Error(err), zap.String("path", r.URL.Path))
			h.RespondError(w, m.status, m.message)
			return
		}
	}
	h.Logger.Error(msg, zap.Error(err), zap.String("path", r.URL.Path))
	h.RespondError(w, http.StatusInternalServerError, "Internal server error")
}

// NotFound answers requests for unknown routes
func (h *BaseHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.RespondError(w, http.StatusNotFound, "Route not found")
}

// MethodNotAllowed answers requests with an unsupported method
func (h *BaseHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// intParam reads a positive integer URL parameter
func intParam(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
