package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyCompletion records that a goal was worked on during one calendar day.
// Date always holds a normalized day (see DayOf); the composite unique index
// makes "one completion per goal per day" a database-level guarantee.
type DailyCompletion struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	GoalID    uuid.UUID `json:"goalId" gorm:"type:uuid;not null;uniqueIndex:idx_completions_goal_day"`
	Date      time.Time `json:"date" gorm:"not null;uniqueIndex:idx_completions_goal_day"`
	Completed bool      `json:"completed" gorm:"default:false"`
}

func (d *DailyCompletion) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// DayOf truncates a timestamp to its UTC calendar day. Every date stored or
// compared by the ledger goes through this, so day equality and adjacency
// are timezone-stable.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether two timestamps fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}
