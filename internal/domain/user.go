package domain

import "time"

// User represents a registered account.
// The password is stored as a bcrypt hash and never serialized.
type User struct {
	ID             int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username       string    `gorm:"type:text;not null;uniqueIndex:idx_users_username" json:"username"`
	HashedPassword string    `gorm:"type:text;not null" json:"-"`
	CreatedAt      time.Time `json:"-"`
}

// TableName returns the database table name for User.
func (User) TableName() string {
	return "users"
}
