package model

import (
	"time"
)

type Question struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	QuestionText string    `json:"question_text" gorm:"size:500;not null"`
	OrderIndex   int       `json:"order_index" gorm:"not null;uniqueIndex"`
	IsActive     bool      `json:"is_active" gorm:"not null;index"`
	CreatedAt    time.Time `json:"created_at"`
}
