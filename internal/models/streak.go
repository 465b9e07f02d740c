package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Streak is the derived consecutive-day statistic for a goal. One row per
// goal, created together with the goal and only ever mutated by the streak
// service's recompute step.
type Streak struct {
	ID                uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	GoalID            uuid.UUID  `json:"goalId" gorm:"type:uuid;uniqueIndex;not null"`
	CurrentStreak     int        `json:"currentStreak" gorm:"default:0"`
	BestStreak        int        `json:"bestStreak" gorm:"default:0"`
	TotalCompleted    int        `json:"totalCompleted" gorm:"default:0"`
	LastCompletedDate *time.Time `json:"lastCompletedDate"`
}

func (s *Streak) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
