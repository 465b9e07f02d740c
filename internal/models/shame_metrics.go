package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShameMetrics struct {
	ID                      uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	GoalID                  uuid.UUID  `json:"goalId" gorm:"type:uuid;uniqueIndex;not null"`
	ConsecutiveSkips        int        `json:"consecutiveSkips" gorm:"default:0"`
	TotalSkips              int        `json:"totalSkips" gorm:"default:0"`
	SocialMediaMinutesToday int        `json:"socialMediaMinutesToday" gorm:"default:0"`
	OpportunityCostHours    int        `json:"opportunityCostHours" gorm:"default:0"`
	LastShameNotification   *time.Time `json:"lastShameNotification"`
}

func (s *ShameMetrics) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type UpdateShameMetricsRequest struct {
	ConsecutiveSkips        *int       `json:"consecutiveSkips"`
	TotalSkips              *int       `json:"totalSkips"`
	SocialMediaMinutesToday *int       `json:"socialMediaMinutesToday"`
	OpportunityCostHours    *int       `json:"opportunityCostHours"`
	LastShameNotification   *time.Time `json:"lastShameNotification"`
}
