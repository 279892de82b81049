package models

import (
	"time"
)

// Like marks a user's interest in a message. The unique index on the
// (user, message) pair keeps concurrent toggles from producing duplicates.
type Like struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_message" json:"user_id"`
	MessageID uint      `gorm:"not null;uniqueIndex:idx_user_message" json:"message_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User    User    `json:"-" gorm:"foreignKey:UserID"`
	Message Message `json:"-" gorm:"foreignKey:MessageID"`
}
