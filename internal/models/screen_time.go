package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScreenTimeEntry struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	GoalID           uuid.UUID `json:"goalId" gorm:"type:uuid;index;not null"`
	AppName          string    `json:"appName" gorm:"not null"`
	TimeSpentMinutes int       `json:"timeSpentMinutes" gorm:"not null"`
	Date             time.Time `json:"date" gorm:"not null"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (s *ScreenTimeEntry) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type CreateScreenTimeRequest struct {
	AppName          string    `json:"appName"`
	TimeSpentMinutes int       `json:"timeSpentMinutes"`
	Date             time.Time `json:"date"`
}
