package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaderboardEntry struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	GoalID         uuid.UUID  `json:"goalId" gorm:"type:uuid;uniqueIndex;not null"`
	UserName       string     `json:"userName" gorm:"not null"`
	StreakCount    int        `json:"streakCount" gorm:"default:0"`
	TotalDays      int        `json:"totalDays" gorm:"default:0"`
	LastActiveDate *time.Time `json:"lastActiveDate"`
	IsAnonymous    bool       `json:"isAnonymous" gorm:"default:true"`
}

func (l *LeaderboardEntry) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

type UpsertLeaderboardRequest struct {
	GoalID      uuid.UUID `json:"goalId"`
	UserName    string    `json:"userName"`
	StreakCount int       `json:"streakCount"`
	TotalDays   int       `json:"totalDays"`
	IsAnonymous *bool     `json:"isAnonymous"`
}
