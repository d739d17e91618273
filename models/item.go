package models

import "time"

type Item struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	ImagePath *string
	Decision  *string
	CreatedBy uint   `gorm:"not null;index"`
	Creator   User   `gorm:"foreignKey:CreatedBy"`
	Votes     []Vote `gorm:"constraint:OnDelete:CASCADE;"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
