package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reward struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	GoalID       uuid.UUID `json:"goalId" gorm:"type:uuid;index;not null"`
	RewardType   string    `json:"rewardType" gorm:"not null"` // streak, milestone, surprise, focus
	PointsEarned int       `json:"pointsEarned" gorm:"default:0"`
	BadgeName    *string   `json:"badgeName"`
	UnlockedAt   time.Time `json:"unlockedAt"`
	Claimed      bool      `json:"claimed" gorm:"default:false"`
}

func (r *Reward) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type CreateRewardRequest struct {
	RewardType   string  `json:"rewardType"`
	PointsEarned int     `json:"pointsEarned"`
	BadgeName    *string `json:"badgeName"`
}
