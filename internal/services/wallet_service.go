package services

import (
	"context"
	"fmt"

	"github.com/blockseblock/backend/internal/models"
	"github.com/blockseblock/backend/internal/rewards"
)

// RedemptionRecorder receives a notification for every successful redemption
type RedemptionRecorder interface {
	ItemRedeemed(item models.StoreItem)
}

// WalletService handles token balances and the swag store
type WalletService struct {
	catalog  CourseCatalog
	learners LearnerRepository
	recorder RedemptionRecorder
}

// NewWalletService creates a new wallet service.
// "recorder" may be nil.
func NewWalletService(catalog CourseCatalog, learners LearnerRepository, recorder RedemptionRecorder) *WalletService {
	return &WalletService{
		catalog:  catalog,
		learners: learners,
		recorder: recorder,
	}
}

// GetWallet returns the principal's balance and most-recent-first history
func (s *WalletService) GetWallet(ctx context.Context, principal string) (*models.Wallet, error) {
	var wallet *models.Wallet
	err := s.learners.Update(ctx, principal, func(l *rewards.Learner) error {
		wallet = l.Wallet()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return wallet, nil
}

// ListStoreItems returns the items that can be redeemed
func (s *WalletService) ListStoreItems(ctx context.Context) ([]models.StoreItem, error) {
	items, err := s.catalog.GetStoreItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get store items: %w", err)
	}
	return items, nil
}

// Redeem spends the item's token cost from the principal's balance.
//
// Returns an error wrapping models.ErrInsufficientBalance if the balance does not cover the cost.
func (s *WalletService) Redeem(ctx context.Context, principal string, itemID int) (*models.RedemptionResult, error) {
	item, err := s.catalog.GetStoreItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	var result *models.RedemptionResult
	err = s.learners.Update(ctx, principal, func(l *rewards.Learner) error {
		r, err := l.Redeem(*item)
		result = r
		return err
	})
	if err != nil {
		return nil, err
	}

	if s.recorder != nil {
		s.recorder.ItemRedeemed(*item)
	}
	return result, nil
}

// DrainAnnouncements returns the reward announcements that are due and removes them from the queue
func (s *WalletService) DrainAnnouncements(ctx context.Context, principal string) ([]models.Announcement, error) {
	var due []models.Announcement
	err := s.learners.Update(ctx, principal, func(l *rewards.Learner) error {
		due = l.DueAnnouncements()
		return nil
	})
	if err != nil {
		return nil, err
	}
	if due == nil {
		due = []models.Announcement{}
	}
	return due, nil
}
