package models

import "time"

// Vote is one user's position on one item. The composite unique index
// makes re-voting an overwrite rather than a history.
type Vote struct {
	ID        uint   `gorm:"primaryKey"`
	ItemID    uint   `gorm:"not null;uniqueIndex:idx_votes_item_user"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_votes_item_user"`
	Vote      string `gorm:"not null"`
	Comment   *string
	CreatedAt time.Time
	User      User `gorm:"foreignKey:UserID"`
}
