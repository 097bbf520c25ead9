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

// UserService defines the interface for user profile operations
type UserService interface {
	// Method Register stores the caller's profile with the student role.
	//
	// If the name is empty or the email is malformed, a validation error is returned.
	Register(ctx context.Context, principal string, req models.UserProfileRequest) (*models.User, error)
	// Method Get returns the caller's profile.
	//
	// If the caller never registered, an error wrapping models.ErrUserNotFound is returned.
	Get(ctx context.Context, principal string) (*models.User, error)
	// Method Update changes the caller's name and email, registering the caller if needed.
	Update(ctx context.Context, principal string, req models.UserProfileRequest) (*models.User, error)
	// Method List returns every registered profile.
	List(ctx context.Context) ([]models.User, error)
}

// UserHandler handles user profile requests
type UserHandler struct {
	BaseHandler
	userService UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		BaseHandler: BaseHandler{Logger: logger},
		userService: userService,
	}
}

// RegisterRoutes registers all user handler routes
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/users", func(r chi.Router) {
		r.Use(middleware.RequirePrincipal)
		r.Get("/", h.List)
		r.With(middleware.RequestSizeLimit(maxJSONBodySize)).Post("/", h.Register)
		r.Get("/me", h.GetMe)
		r.With(middleware.RequestSizeLimit(maxJSONBodySize)).Put("/me", h.UpdateMe)
	})
}

// Register handles POST /api/users
// @Summary Register the caller
// @Description Store the caller's name and email with the student role
// @Tags users
// @Accept json
// @Produce json
// @Param X-Principal header string true "Caller principal"
// @Param request body models.UserProfileRequest true "Profile"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} models.ErrorResponse "Invalid profile"
// @Failure 401 {object} models.ErrorResponse "Principal is required"
// @Router /api/users [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeProfile(w, r)
	if !ok {
		return
	}

	user, err := h.userService.Register(r.Context(), middleware.GetPrincipal(r.Context()), req)
	if err != nil {
		h.RespondServiceError(w, r, err, "failed to register user")
		return
	}

	h.Logger.Info("user registered", zap.String("principal", user.Principal))
	h.RespondJSON(w, http.StatusOK, models.UserResponse{Success: true, User: user})
}

// GetMe handles GET /api/users/me
// @Summary Get the caller's profile
// @Tags users
// @Produce json
// @Param X-Principal header string true "Caller principal"
// @Success 200 {object} models.UserResponse
// @Failure 401 {object} models.ErrorResponse "Principal is required"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Router /api/users/me [get]
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Get(r.Context(), middleware.GetPrincipal(r.Context()))
	if err != nil {
		h.RespondServiceError(w, r, err, "failed to get user")
		return
	}
	h.RespondJSON(w, http.StatusOK, models.UserResponse{Success: true, User: user})
}

// UpdateMe handles PUT /api/users/me
// @Summary Update the caller's profile
// @Description Change name and email. A caller without a profile is registered as a student.
// @Tags users
// @Accept json
// @Produce json
// @Param X-Principal header string true "Caller principal"
// @Param request body models.UserProfileRequest true "Profile"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} models.ErrorResponse "Invalid profile"
// @Failure 401 {object} models.ErrorResponse "Principal is required"
// @Router /api/users/me [put]
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeProfile(w, r)
	if !ok {
		return
	}

	user, err := h.userService.Update(r.Context(), middleware.GetPrincipal(r.Context()), req)
	if err != nil {
		h.RespondServiceError(w, r, err, "failed to update user")
		return
	}
	h.RespondJSON(w, http.StatusOK, models.UserResponse{Success: true, User: user})
}

// List handles GET /api/users
// @Summary List users
// @Tags users
// @Produce json
// @Param X-Principal header string true "Caller principal"
// @Success 200 {object} models.UsersResponse
// @Failure 401 {object} models.ErrorResponse "Principal is required"
// @Router /api/users [get]
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.RespondServiceError(w, r, err, "failed to list users")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	h.RespondJSON(w, http.StatusOK, models.UsersResponse{Success: true, Users: users})
}

func (h *UserHandler) decodeProfile(w http.ResponseWriter, r *http.Request) (models.UserProfileRequest, bool) {
	var req models.UserProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Info("invalid profile body", zap.Error(err))
		h.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	return req, true
}
