package model

import (
	"time"
)

type InspectionStatus string

const (
	InspectionStatusInProgress InspectionStatus = "IN_PROGRESS"
	InspectionStatusCompleted  InspectionStatus = "COMPLETED"
)

// Inspection is one checklist run for a car. At most one IN_PROGRESS row per car;
// COMPLETED is terminal.
type Inspection struct {
	ID             uint             `gorm:"primarykey" json:"id"`
	CarID          string           `json:"car_id" gorm:"size:100;not null;index"`
	InspectionDate time.Time        `json:"inspection_date" gorm:"not null"`
	Status         InspectionStatus `json:"status" gorm:"size:20;not null;default:'IN_PROGRESS';index"`
	CreatedAt      time.Time        `json:"created_at"`
	Answers        []Answer         `json:"answers,omitempty" gorm:"foreignKey:InspectionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (i *Inspection) MarkAsCompleted() {
	i.Status = InspectionStatusCompleted
}
