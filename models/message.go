package models

import (
	"time"
)

// MaxMessageLength bounds the text body of a message.
const MaxMessageLength = 140

type Message struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Text      string    `gorm:"not null;type:varchar(140)" json:"text"`
	UserID    uint      `gorm:"not null;index" json:"user_id"` // author, immutable after creation
	User      User      `json:"user" gorm:"foreignKey:UserID"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Likes []Like `json:"-" gorm:"foreignKey:MessageID"`
}
