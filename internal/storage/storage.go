package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lockedin/lockedin-api/internal/models"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateDay = errors.New("completion already exists for this day")
)

// Storage is the persistence boundary. The streak engine and handlers depend
// on this interface only, so the backing store (GORM over sqlite/postgres, or
// the in-memory store) can be swapped without touching any domain logic.
type Storage interface {
	// Goals. CreateGoal persists the goal and its zeroed streak atomically;
	// a goal never exists without a streak row.
	CreateGoal(goal *models.Goal, streak *models.Streak) error
	GetGoal(id uuid.UUID) (*models.Goal, error)
	ListGoals() ([]models.Goal, error)
	UpdateGoal(goal *models.Goal) error
	// DeleteGoal removes the goal and every dependent record (streak,
	// completions, screen time, sessions, rewards, leaderboard, shame
	// metrics). Returns false when no goal matched.
	DeleteGoal(id uuid.UUID) (bool, error)

	// Streaks
	GetStreak(goalID uuid.UUID) (*models.Streak, error)
	UpdateStreak(streak *models.Streak) error

	// Daily completions. Dates are expected pre-normalized via models.DayOf;
	// CreateDailyCompletion returns ErrDuplicateDay when a row already
	// exists for the same (goal, day).
	GetDailyCompletion(goalID uuid.UUID, day time.Time) (*models.DailyCompletion, error)
	CreateDailyCompletion(completion *models.DailyCompletion) error
	CompletionsForGoal(goalID uuid.UUID) ([]models.DailyCompletion, error)

	// Screen time
	ScreenTimeEntries(goalID uuid.UUID) ([]models.ScreenTimeEntry, error)
	CreateScreenTimeEntry(entry *models.ScreenTimeEntry) error
	ScreenTimeForDay(goalID uuid.UUID, day time.Time) (int, error)

	// Micro sessions
	MicroSessions(goalID uuid.UUID) ([]models.MicroSession, error)
	CreateMicroSession(session *models.MicroSession) error

	// Focus sessions
	FocusSessions(goalID uuid.UUID) ([]models.FocusSession, error)
	GetFocusSession(id uuid.UUID) (*models.FocusSession, error)
	CreateFocusSession(session *models.FocusSession) error
	UpdateFocusSession(session *models.FocusSession) error

	// Rewards
	Rewards(goalID uuid.UUID) ([]models.Reward, error)
	CreateReward(reward *models.Reward) error
	GetReward(id uuid.UUID) (*models.Reward, error)
	UpdateReward(reward *models.Reward) error

	// Leaderboard
	Leaderboard() ([]models.LeaderboardEntry, error)
	GetLeaderboardEntry(goalID uuid.UUID) (*models.LeaderboardEntry, error)
	SaveLeaderboardEntry(entry *models.LeaderboardEntry) error

	// Shame metrics
	GetShameMetrics(goalID uuid.UUID) (*models.ShameMetrics, error)
	SaveShameMetrics(metrics *models.ShameMetrics) error
}
