package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FocusSession struct {
	ID                     uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	GoalID                 uuid.UUID  `json:"goalId" gorm:"type:uuid;index;not null"`
	StartTime              time.Time  `json:"startTime" gorm:"not null"`
	EndTime                *time.Time `json:"endTime"`
	PlannedDurationMinutes int        `json:"plannedDurationMinutes" gorm:"not null"`
	ActualDurationMinutes  *int       `json:"actualDurationMinutes"`
	DistractionEvents      int        `json:"distractionEvents" gorm:"default:0"`
	CompletionRate         int        `json:"completionRate" gorm:"default:0"` // 0-100
}

func (f *FocusSession) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

type CreateFocusSessionRequest struct {
	StartTime              time.Time `json:"startTime"`
	PlannedDurationMinutes int       `json:"plannedDurationMinutes"`
}

type UpdateFocusSessionRequest struct {
	EndTime               *time.Time `json:"endTime"`
	ActualDurationMinutes *int       `json:"actualDurationMinutes"`
	DistractionEvents     *int       `json:"distractionEvents"`
	CompletionRate        *int       `json:"completionRate"`
}
