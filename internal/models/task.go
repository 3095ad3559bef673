package models

import (
	"time"
)

type Task struct {
	ID          uint64    `gorm:"primarykey;autoIncrement:false" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Completed   bool      `gorm:"not null" json:"completed"`
	OwnerID     uint64    `gorm:"not null;index" json:"belongs_to"`
	CreatedAt   time.Time `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}
