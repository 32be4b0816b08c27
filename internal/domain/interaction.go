package domain

import "time"

// InteractionType classifies a user action on a product.
// Values are InteractionView, InteractionLike, and InteractionPurchase.
type InteractionType string

const (
	InteractionView     InteractionType = "view"
	InteractionLike     InteractionType = "like"
	InteractionPurchase InteractionType = "purchase"
)

// CollaborativeTypes are the interaction types that feed the user-item matrix.
// Views are tracked but carry no preference signal.
var CollaborativeTypes = []InteractionType{InteractionLike, InteractionPurchase}

// Interaction is an append-only record of a user action on a product.
// Rows are created by the tracking endpoints and never updated or deleted.
type Interaction struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int             `gorm:"not null;index:idx_interactions_user" json:"user_id"`
	ProductID int             `gorm:"not null;index:idx_interactions_product" json:"product_id"`
	Type      InteractionType `gorm:"column:interaction_type;type:text;not null;index:idx_interactions_type" json:"interaction_type"`
	Timestamp time.Time       `gorm:"autoCreateTime;index:idx_interactions_ts" json:"timestamp"`
}

// TableName returns the database table name for Interaction.
func (Interaction) TableName() string {
	return "user_interactions"
}

// UserHistory is the response shape for a user's interaction history,
// ordered newest-first.
type UserHistory struct {
	UserID  int           `json:"user_id"`
	History []Interaction `json:"history"`
}
