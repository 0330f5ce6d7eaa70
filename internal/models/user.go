package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:60;uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"column:password;size:255;not null" json:"-"`
	Email        *string   `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
