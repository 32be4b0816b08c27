package service

import (
	"context"
	"fmt"

	"github.com/sanuatmasai/Product-Recommendation/internal/domain"
	"github.com/sanuatmasai/Product-Recommendation/internal/logger"
)

// InteractionStore is the persistence surface the tracking service needs.
// *repository.InteractionRepository satisfies it.
type InteractionStore interface {
	Create(ctx context.Context, interaction *domain.Interaction) error
	ListByUser(ctx context.Context, userID int) ([]domain.Interaction, error)
}

// TrackingService appends user interactions and serves interaction history.
type TrackingService struct {
	interactions InteractionStore
	logger       *logger.Logger
}

// NewTrackingService creates a new tracking service.
// Parameters:
//   - interactions: interaction persistence store.
//   - log: logger instance.
// Returns:
//   - *TrackingService: initialized service.
func NewTrackingService(interactions InteractionStore, log *logger.Logger) *TrackingService {
	return &TrackingService{
		interactions: interactions,
		logger:       log,
	}
}

// log returns a logger from context if available, otherwise the service default.
func (s *TrackingService) log(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l != nil {
		return l
	}
	return s.logger
}

// Track appends an interaction record of the given type.
// The timestamp is assigned by the store on insert.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - userID: acting user id.
//   - productID: product acted upon.
//   - interactionType: view, like, or purchase.
// Returns:
//   - *domain.Interaction: persisted record with ID and Timestamp set.
//   - error: non-nil if the insert fails.
func (s *TrackingService) Track(ctx context.Context, userID, productID int, interactionType domain.InteractionType) (*domain.Interaction, error) {
	interaction := &domain.Interaction{
		UserID:    userID,
		ProductID: productID,
		Type:      interactionType,
	}
	if err := s.interactions.Create(ctx, interaction); err != nil {
		return nil, fmt.Errorf("failed to record %s interaction: %w", interactionType, err)
	}

	s.log(ctx).WithFields(logger.Fields{
		"user_id":    userID,
		"product_id": productID,
		"type":       interactionType,
	}).Debug("Interaction recorded")

	return interaction, nil
}

// History returns a user's interactions, newest first.
// A user with no interactions gets an empty history, not an error.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - userID: user id.
// Returns:
//   - *domain.UserHistory: history response, History never nil.
//   - error: non-nil if the query fails.
func (s *TrackingService) History(ctx context.Context, userID int) (*domain.UserHistory, error) {
	interactions, err := s.interactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	if interactions == nil {
		interactions = []domain.Interaction{}
	}
	return &domain.UserHistory{
		UserID:  userID,
		History: interactions,
	}, nil
}
