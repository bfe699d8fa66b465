package model

import (
	"strings"
	"time"
)

type AnswerType string

const (
	AnswerYes AnswerType = "YES"
	AnswerNo  AnswerType = "NO"
)

// ParseAnswerType accepts "yes"/"no" in any case.
func ParseAnswerType(raw string) (AnswerType, bool) {
	switch AnswerType(strings.ToUpper(strings.TrimSpace(raw))) {
	case AnswerYes:
		return AnswerYes, true
	case AnswerNo:
		return AnswerNo, true
	}
	return "", false
}

type Answer struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	InspectionID uint       `json:"inspection_id" gorm:"not null;uniqueIndex:ux_answer_inspection_question"`
	QuestionID   uint       `json:"question_id" gorm:"not null;uniqueIndex:ux_answer_inspection_question;index"`
	Question     Question   `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Answer       AnswerType `json:"answer" gorm:"size:10;not null"`
	Description  *string    `json:"description,omitempty" gorm:"size:1000"`
	CreatedAt    time.Time  `json:"created_at"`
	Photos       []Photo    `json:"photos,omitempty" gorm:"foreignKey:AnswerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (Answer) TableName() string {
	return "inspection_answers"
}

func (a *Answer) IsYes() bool {
	return a.Answer == AnswerYes
}
