package repository

import (
	"context"
	"errors"

	"github.com/sanuatmasai/Product-Recommendation/internal/domain"
	"gorm.io/gorm"
)

// UserRepository handles user account persistence.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *UserRepository: repository instance bound to db.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - user: user record to persist; ID is filled in on success.
// Returns:
//   - error: non-nil if the insert fails.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByUsername retrieves a user by username.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - username: unique username.
// Returns:
//   - *domain.User: user record, or nil if no such user exists.
//   - error: non-nil if the lookup fails for any other reason.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsername checks whether a username is already registered.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - username: username to check.
// Returns:
//   - bool: true if a record exists.
//   - error: non-nil if the lookup fails.
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
