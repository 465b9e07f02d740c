package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MicroSession struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	GoalID           uuid.UUID `json:"goalId" gorm:"type:uuid;index;not null"`
	DurationSeconds  int       `json:"durationSeconds" gorm:"not null"`
	DistractionCount int       `json:"distractionCount" gorm:"default:0"`
	FocusScore       int       `json:"focusScore" gorm:"default:100"` // 0-100
	CompletedAt      time.Time `json:"completedAt"`
}

func (m *MicroSession) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

type CreateMicroSessionRequest struct {
	DurationSeconds  int `json:"durationSeconds"`
	DistractionCount int `json:"distractionCount"`
	FocusScore       int `json:"focusScore"`
}
