package handlers

import (
	"net/http"
	"time"

	"github.com/blockseblock/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// HealthHandler reports that the server is up
type HealthHandler struct {
	BaseHandler
	now func() time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		now:         time.Now,
	}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/health", h.Health)
}

// Health handles GET /api/health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /api/health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, models.HealthResponse{
		Success:   true,
		Message:   "Server is running",
		Timestamp: h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	})
}
