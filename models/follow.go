package models

import (
	"time"
)

// Follow is a directed edge: the follower's feed includes the followee's
// messages. The composite unique index rejects duplicate edges at the store.
type Follow struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID uint      `gorm:"not null;index;uniqueIndex:idx_follower_followee" json:"follower_id"`
	FolloweeID uint      `gorm:"not null;index;uniqueIndex:idx_follower_followee" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower User `json:"-" gorm:"foreignKey:FollowerID"`
	Followee User `json:"-" gorm:"foreignKey:FolloweeID"`
}
