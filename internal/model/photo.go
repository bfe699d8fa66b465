package model

import (
	"time"
)

// Photo is immutable once created. IsNew is true when the photo arrived with the
// submission that created it.
type Photo struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	AnswerID   uint      `json:"answer_id" gorm:"not null;index"`
	PhotoURL   string    `json:"photo_url" gorm:"size:500;not null"`
	IsNew      bool      `json:"is_new" gorm:"not null"`
	UploadedAt time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}

func (Photo) TableName() string {
	return "inspection_photos"
}
