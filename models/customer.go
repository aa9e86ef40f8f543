package models

import "time"

type Customer struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Phone         string    `gorm:"type:varchar(10);not null;uniqueIndex" json:"phone"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Address       string    `gorm:"type:varchar(255);not null" json:"address"`
	ReferenceNote string    `gorm:"type:text" json:"referenceNote"`
	CreatedAt     time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"not null" json:"updatedAt"`
}
