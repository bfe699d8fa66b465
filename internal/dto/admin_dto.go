package dto

import "time"

// QuestionCreateDTO is used by admins to append a question to the checklist.
type QuestionCreateDTO struct {
	QuestionText string `json:"questionText" binding:"required,max=500"`
}

// QuestionUpdateDTO edits the text of an existing question.
type QuestionUpdateDTO struct {
	QuestionText string `json:"questionText" binding:"required,max=500"`
}

// QuestionReorderDTO moves a question to a new position in the checklist.
type QuestionReorderDTO struct {
	OrderIndex int `json:"orderIndex" binding:"required,min=1"`
}

// QuestionAdminDTO is the full admin view of a catalog question.
type QuestionAdminDTO struct {
	ID           uint      `json:"id"`
	QuestionText string    `json:"questionText"`
	OrderIndex   int       `json:"orderIndex"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// QuestionCountDTO reports the size of the active checklist.
type QuestionCountDTO struct {
	ActiveQuestions int64 `json:"activeQuestions"`
}
