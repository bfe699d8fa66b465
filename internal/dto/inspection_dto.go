package dto

import "time"

// --- Checklist (questions with carried-forward answers) ---

// PhotoInfoDTO is a photo reference as shown on a checklist question.
type PhotoInfoDTO struct {
	URL   string `json:"url"`
	IsNew bool   `json:"isNew"`
}

// PreviousAnswerDTO is the answer given to a question in the reference inspection.
type PreviousAnswerDTO struct {
	Answer      string         `json:"answer"`
	Description *string        `json:"description"`
	Photos      []PhotoInfoDTO `json:"photos"`
}

// QuestionResponseDTO is one checklist entry.
type QuestionResponseDTO struct {
	ID             uint               `json:"id"`
	QuestionText   string             `json:"questionText"`
	OrderIndex     int                `json:"orderIndex"`
	PreviousAnswer *PreviousAnswerDTO `json:"previousAnswer,omitempty"`
}

// InspectionQuestionsResponseDTO is the checklist for a car together with the
// reference inspection it was pre-filled from, if any.
type InspectionQuestionsResponseDTO struct {
	CarID                 string                `json:"carId"`
	Questions             []QuestionResponseDTO `json:"questions"`
	HasPreviousInspection bool                  `json:"hasPreviousInspection"`
	LastInspectionDate    *time.Time            `json:"lastInspectionDate,omitempty"`
	InspectionID          *uint                 `json:"inspectionId,omitempty"`
	Status                *string               `json:"status,omitempty"`
}

// --- Submission ---

// AnswerSubmitDTO is one answered question of a submitted checklist.
type AnswerSubmitDTO struct {
	QuestionID  *uint    `json:"questionId"`
	Answer      string   `json:"answer"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=1000"`
	PhotoURLs   []string `json:"photoUrls,omitempty" validate:"omitempty,dive,max=500"`
}

// CreateInspectionRequestDTO is the request body of a checklist submission.
type CreateInspectionRequestDTO struct {
	CarID   string            `json:"carId" validate:"max=100"`
	Answers []AnswerSubmitDTO `json:"answers" validate:"dive"`
}

// CreateInspectionResponseDTO acknowledges a persisted submission.
type CreateInspectionResponseDTO struct {
	InspectionID uint      `json:"inspectionId"`
	CarID        string    `json:"carId"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	Message      string    `json:"message"`
}

// --- Debug / history projections ---

// InspectionDetailDTO is the debug view of a single inspection.
type InspectionDetailDTO struct {
	InspectionID   uint      `json:"inspectionId"`
	CarID          string    `json:"carId"`
	Status         string    `json:"status"`
	InspectionDate time.Time `json:"inspectionDate"`
	CreatedAt      time.Time `json:"createdAt"`
	AnswerCount    int64     `json:"answerCount"`
}

// InspectionSummaryItemDTO is one row of a car's inspection history.
type InspectionSummaryItemDTO struct {
	InspectionID   uint      `json:"inspectionId"`
	Status         string    `json:"status"`
	InspectionDate time.Time `json:"inspectionDate"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CarInspectionHistoryDTO lists every inspection of a car, newest first.
type CarInspectionHistoryDTO struct {
	CarID            string                     `json:"carId"`
	TotalInspections int                        `json:"totalInspections"`
	Inspections      []InspectionSummaryItemDTO `json:"inspections"`
}

// InspectionStatsDTO aggregates the answers and photos of one inspection.
type InspectionStatsDTO struct {
	InspectionID      uint   `json:"inspectionId"`
	CarID             string `json:"carId"`
	Status            string `json:"status"`
	AnsweredQuestions int64  `json:"answeredQuestions"`
	YesAnswers        int64  `json:"yesAnswers"`
	NoAnswers         int64  `json:"noAnswers"`
	TotalPhotos       int64  `json:"totalPhotos"`
	NewPhotos         int64  `json:"newPhotos"`
	PreviousPhotos    int64  `json:"previousPhotos"`
}

// HealthResponseDTO is returned by the health endpoint.
type HealthResponseDTO struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}
