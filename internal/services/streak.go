package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lockedin/lockedin-api/internal/models"
	"github.com/lockedin/lockedin-api/internal/storage"
)

// StreakService owns the completion ledger and the streak counters derived
// from it. All writes for one goal run under that goal's mutex, so a
// double-click or a second browser tab observes ErrAlreadyCompleted instead
// of double-incrementing the counters. The (goal_id, date) unique index is
// the second line of defense when two processes share one database.
type StreakService struct {
	store storage.Storage

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewStreakService(store storage.Storage) *StreakService {
	return &StreakService{
		store: store,
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *StreakService) goalLock(goalID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[goalID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[goalID] = lock
	}
	return lock
}

// Get returns the streak for a goal.
func (s *StreakService) Get(goalID uuid.UUID) (*models.Streak, error) {
	return s.store.GetStreak(goalID)
}

// Completions returns a goal's completion history ordered by day.
func (s *StreakService) Completions(goalID uuid.UUID) ([]models.DailyCompletion, error) {
	return s.store.CompletionsForGoal(goalID)
}

// RecordCompletion marks one calendar day as completed for a goal and
// recomputes the streak counters. The day is normalized to a UTC calendar
// day before any comparison or storage.
//
// Failure modes: storage.ErrNotFound when the goal does not exist,
// ErrAlreadyCompleted when the day already has a completion, and a
// ValidationError when the day precedes the last completed day (an
// out-of-order write would silently corrupt the counters, so it is refused).
func (s *StreakService) RecordCompletion(goalID uuid.UUID, day time.Time) (*models.Streak, error) {
	if day.IsZero() {
		return nil, validationErr("completion day is required")
	}
	day = models.DayOf(day)

	lock := s.goalLock(goalID)
	lock.Lock()
	defer lock.Unlock()

	if _, err := s.store.GetGoal(goalID); err != nil {
		return nil, err
	}

	streak, err := s.store.GetStreak(goalID)
	if err != nil {
		return nil, err
	}

	if streak.LastCompletedDate != nil {
		last := models.DayOf(*streak.LastCompletedDate)
		if day.Equal(last) {
			return nil, ErrAlreadyCompleted
		}
		if day.Before(last) {
			return nil, validationErr("completion day precedes the last completed day")
		}
	}

	existing, err := s.store.GetDailyCompletion(goalID, day)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.Completed {
		return nil, ErrAlreadyCompleted
	}

	completion := &models.DailyCompletion{
		GoalID:    goalID,
		Date:      day,
		Completed: true,
	}
	if err := s.store.CreateDailyCompletion(completion); err != nil {
		if errors.Is(err, storage.ErrDuplicateDay) {
			return nil, ErrAlreadyCompleted
		}
		return nil, err
	}

	applyCompletion(streak, day)
	if err := s.store.UpdateStreak(streak); err != nil {
		return nil, err
	}
	return streak, nil
}

// applyCompletion advances the counters for one newly completed day. A day
// adjacent to the last completed day extends the run; anything else starts a
// new run of 1, because the day just completed counts itself. There is no
// active decay: a dormant goal keeps its last currentStreak until the next
// completion reveals the gap.
func applyCompletion(streak *models.Streak, day time.Time) {
	yesterday := day.AddDate(0, 0, -1)
	if streak.LastCompletedDate != nil && models.SameDay(*streak.LastCompletedDate, yesterday) {
		streak.CurrentStreak++
	} else {
		streak.CurrentStreak = 1
	}
	if streak.CurrentStreak > streak.BestStreak {
		streak.BestStreak = streak.CurrentStreak
	}
	streak.TotalCompleted++
	completed := day
	streak.LastCompletedDate = &completed
}

// RecomputeFromHistory rebuilds the streak counters by replaying the full
// completion history in date order. It yields the same result as the
// incremental path for any chronological sequence, and doubles as a repair
// tool if counters are ever suspected stale.
func (s *StreakService) RecomputeFromHistory(goalID uuid.UUID) (*models.Streak, error) {
	lock := s.goalLock(goalID)
	lock.Lock()
	defer lock.Unlock()

	streak, err := s.store.GetStreak(goalID)
	if err != nil {
		return nil, err
	}
	completions, err := s.store.CompletionsForGoal(goalID)
	if err != nil {
		return nil, err
	}

	streak.CurrentStreak = 0
	streak.BestStreak = 0
	streak.TotalCompleted = 0
	streak.LastCompletedDate = nil
	for _, c := range completions {
		if !c.Completed {
			continue
		}
		applyCompletion(streak, models.DayOf(c.Date))
	}

	if err := s.store.UpdateStreak(streak); err != nil {
		return nil, err
	}
	return streak, nil
}
