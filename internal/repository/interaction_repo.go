package repository

import (
	"context"

	"github.com/sanuatmasai/Product-Recommendation/internal/domain"
	"gorm.io/gorm"
)

// InteractionRepository handles the append-only interaction log.
// Records are only ever created and queried, never updated or deleted.
type InteractionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository creates a new InteractionRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *InteractionRepository: repository instance bound to db.
func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// Create appends a new interaction record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - interaction: record to persist; ID and Timestamp are filled in on success.
// Returns:
//   - error: non-nil if the insert fails.
func (r *InteractionRepository) Create(ctx context.Context, interaction *domain.Interaction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

// ListByTypes retrieves all interactions matching any of the given types.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - types: interaction types to include.
// Returns:
//   - []domain.Interaction: matching records in insertion order.
//   - error: non-nil if the query fails.
func (r *InteractionRepository) ListByTypes(ctx context.Context, types []domain.InteractionType) ([]domain.Interaction, error) {
	var interactions []domain.Interaction
	if err := r.db.WithContext(ctx).
		Where("interaction_type IN ?", types).
		Order("id ASC").
		Find(&interactions).Error; err != nil {
		return nil, err
	}
	return interactions, nil
}

// ListByUser retrieves a user's interactions, newest first.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - userID: user id to filter by.
// Returns:
//   - []domain.Interaction: the user's records ordered by timestamp descending.
//   - error: non-nil if the query fails.
func (r *InteractionRepository) ListByUser(ctx context.Context, userID int) ([]domain.Interaction, error) {
	var interactions []domain.Interaction
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&interactions).Error; err != nil {
		return nil, err
	}
	return interactions, nil
}
