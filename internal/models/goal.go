package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Goal struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Deadline  time.Time `json:"deadline" gorm:"not null"`
	Reason    *string   `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

type CreateGoalRequest struct {
	Name     string    `json:"name"`
	Deadline time.Time `json:"deadline"`
	Reason   *string   `json:"reason"`
}

type UpdateGoalRequest struct {
	Name     *string    `json:"name"`
	Deadline *time.Time `json:"deadline"`
	Reason   *string    `json:"reason"`
}
