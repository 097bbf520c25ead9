package handlers

import (
	"context"
	"net/http"

	"github.com/blockseblock/backend/internal/middleware"
	"github.com/blockseblock/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// WalletService defines the interface for wallet and store operations
type WalletService interface {
	// Method GetWallet returns the principal's balance and history.
	GetWallet(ctx context.Context, principal string) (*models.Wallet, error)
	// Method ListStoreItems returns the items that can be redeemed.
	ListStoreItems(ctx context.Context) ([]models.StoreItem, error)
	// Method Redeem spends the item's cost from the principal's balance.
	//
	// If the balance does not cover the cost, an error wrapping models.ErrInsufficientBalance is returned.
	Redeem(ctx context.Context, principal string, itemID int) (*models.RedemptionResult, error)
	// Method DrainAnnouncements returns and removes the reward announcements that are due.
	DrainAnnouncements(ctx context.Context, principal string) ([]models.Announcement, error)
}

// WalletHandler handles wallet and swag store requests
type WalletHandler struct {
	BaseHandler
	walletService WalletService
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletService WalletService, logger *zap.Logger) *WalletHandler {
	return &WalletHandler{
		BaseHandler:   BaseHandler{Logger: logger},
		walletService: walletService,
	}
}

// RegisterRoutes registers all wallet handler routes
func (h *WalletHandler) RegisterRoutes(r chi.Router) {
	r.Get("/api/store/items", h.ListStoreItems)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequirePrincipal)
		r.Get("/api/wallet", h.GetWallet)
		r.Get("/api/wallet/announcements", h.GetAnnouncements)
		r.Post("/api/store/items/{itemId}/redeem", h.Redeem)
	})
}

// GetWallet handles GET /api/wallet
// @Summary Get wallet
// @Description Token balance and most-recent-first history of the caller
// @Tags wallet
// @Produce json
// @Param X-Principal header string true "Learner principal"
// @Success 200 {object} models.WalletResponse
// @Failure 401 {object} models.ErrorResponse "Principal is required"
// @Router /api/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.walletService.GetWallet(r.Context(), middleware.GetPrincipal(r.Context()))
	if err != nil {
		h.RespondServiceError(w, r, err, "failed to get wallet")
		return
	}
	h.RespondJSON(w, http.StatusOK, models.WalletResponse{Success: true, Wallet: wallet})
}

// GetAnnouncements handles GET /api/wallet/announcements
// @Summary Drain reward announcements
// @Description Returns the reward notifications that are due and removes them. Rewards earned together become due one after another.
// @Tags wallet
// @Produce json
// @Param X-Principal header string true "Learner principal"
// @Success 200 {object} models.AnnouncementsResponse
// @Failure 401 {object} models.ErrorResponse "Principal is required"
// @Router /api/wallet/announcements [get]
func (h *WalletHandler) GetAnnouncements(w http.ResponseWriter, r *http.Request) {
	due, err := h.walletService.DrainAnnouncements(r.Context(), middleware.GetPrincipal(r.Context()))
	if err != nil {
		h.RespondServiceError(w, r, err, "failed to get announcements")
		return
	}
	h.RespondJSON(w, http.StatusOK, models.AnnouncementsResponse{Success: true, Announcements: due})
}

// ListStoreItems handles GET /api/store/items
// @Summary List store items
// @Tags store
// @Produce json
// @Success 200 {object} models.StoreItemsResponse
// @Router /api/store/items [get]
func (h *WalletHandler) ListStoreItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.walletService.ListStoreItems(r.Context())
	if err != nil {
		h.RespondServiceError(w, r, err, "failed to list store items")
		return
	}
	h.RespondJSON(w, http.StatusOK, models.StoreItemsResponse{Success: true, Items: items})
}

// Redeem handles POST /api/store/items/{itemId}/redeem
// @Summary Redeem a store item
// @Tags store
// @Produce json
// @Param itemId path int true "Store item ID"
// @Param X-Principal header string true "Learner principal"
// @Success 200 {object} models.RedemptionResponse
// @Failure 401 {object} models.ErrorResponse "Principal is required"
// @Failure 404 {object} models.ErrorResponse "Store item not found"
// @Failure 409 {object} models.ErrorResponse "Insufficient token balance"
// @Router /api/store/items/{itemId}/redeem [post]
func (h *WalletHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := intParam(r, "itemId")
	if !ok {
		h.RespondError(w, http.StatusNotFound, "Store item not found")
		return
	}
	principal := middleware.GetPrincipal(r.Context())

	result, err := h.walletService.Redeem(r.Context(), principal, itemID)
	if err != nil {
		h.RespondServiceError(w, r, err, "failed to redeem item")
		return
	}

	h.Logger.Info("store item redeemed",
		zap.String("principal", principal),
		zap.Int("item_id", itemID),
		zap.Int("balance", result.Balance),
	)
	h.RespondJSON(w, http.StatusOK, models.RedemptionResponse{Success: true, Redemption: result})
}
