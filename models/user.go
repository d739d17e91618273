package models

import "time"

type User struct {
	ID          uint   `gorm:"primaryKey"`
	Username    string `gorm:"not null;unique"`
	Password    string `gorm:"not null"`
	DisplayName string `gorm:"not null"`
	IsAdmin     bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	Items       []Item `gorm:"foreignKey:CreatedBy"`
}

// UserClaims is the identity embedded in a session token. Claims are
// trusted as of issuance: renaming a user or revoking the admin flag
// does not invalidate tokens that are already out there until they expire.
type UserClaims struct {
	ID          uint
	Username    string
	DisplayName string
	IsAdmin     bool
}
