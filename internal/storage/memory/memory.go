// Package memory provides an in-process Storage implementation backed by
// maps. It powers the test suites and the mem:// DSN for running the API
// without a database file.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lockedin/lockedin-api/internal/models"
	"github.com/lockedin/lockedin-api/internal/storage"
)

type Store struct {
	mu          sync.RWMutex
	goals       map[uuid.UUID]models.Goal
	streaks     map[uuid.UUID]models.Streak // keyed by goal ID
	completions map[uuid.UUID]models.DailyCompletion
	screenTime  map[uuid.UUID]models.ScreenTimeEntry
	microSess   map[uuid.UUID]models.MicroSession
	focusSess   map[uuid.UUID]models.FocusSession
	rewards     map[uuid.UUID]models.Reward
	leaderboard map[uuid.UUID]models.LeaderboardEntry // keyed by goal ID
	shame       map[uuid.UUID]models.ShameMetrics     // keyed by goal ID
}

var _ storage.Storage = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		goals:       make(map[uuid.UUID]models.Goal),
		streaks:     make(map[uuid.UUID]models.Streak),
		completions: make(map[uuid.UUID]models.DailyCompletion),
		screenTime:  make(map[uuid.UUID]models.ScreenTimeEntry),
		microSess:   make(map[uuid.UUID]models.MicroSession),
		focusSess:   make(map[uuid.UUID]models.FocusSession),
		rewards:     make(map[uuid.UUID]models.Reward),
		leaderboard: make(map[uuid.UUID]models.LeaderboardEntry),
		shame:       make(map[uuid.UUID]models.ShameMetrics),
	}
}

// Goals

func (s *Store) CreateGoal(goal *models.Goal, streak *models.Streak) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if goal.ID == uuid.Nil {
		goal.ID = uuid.New()
	}
	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = time.Now()
	}
	if streak.ID == uuid.Nil {
		streak.ID = uuid.New()
	}
	streak.GoalID = goal.ID

	s.goals[goal.ID] = *goal
	s.streaks[goal.ID] = *streak
	return nil
}

func (s *Store) GetGoal(id uuid.UUID) (*models.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	goal, ok := s.goals[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &goal, nil
}

func (s *Store) ListGoals() ([]models.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	goals := make([]models.Goal, 0, len(s.goals))
	for _, g := range s.goals {
		goals = append(goals, g)
	}
	sort.Slice(goals, func(i, j int) bool {
		return goals[i].CreatedAt.After(goals[j].CreatedAt)
	})
	return goals, nil
}

func (s *Store) UpdateGoal(goal *models.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.goals[goal.ID]; !ok {
		return storage.ErrNotFound
	}
	s.goals[goal.ID] = *goal
	return nil
}

func (s *Store) DeleteGoal(id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.goals[id]; !ok {
		return false, nil
	}
	delete(s.goals, id)
	delete(s.streaks, id)
	delete(s.leaderboard, id)
	delete(s.shame, id)
	for cid, c := range s.completions {
		if c.GoalID == id {
			delete(s.completions, cid)
		}
	}
	for eid, e := range s.screenTime {
		if e.GoalID == id {
			delete(s.screenTime, eid)
		}
	}
	for mid, m := range s.microSess {
		if m.GoalID == id {
			delete(s.microSess, mid)
		}
	}
	for fid, f := range s.focusSess {
		if f.GoalID == id {
			delete(s.focusSess, fid)
		}
	}
	for rid, r := range s.rewards {
		if r.GoalID == id {
			delete(s.rewards, rid)
		}
	}
	return true, nil
}

// Streaks

func (s *Store) GetStreak(goalID uuid.UUID) (*models.Streak, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	streak, ok := s.streaks[goalID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &streak, nil
}

func (s *Store) UpdateStreak(streak *models.Streak) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.streaks[streak.GoalID]; !ok {
		return storage.ErrNotFound
	}
	s.streaks[streak.GoalID] = *streak
	return nil
}

// Daily completions

func (s *Store) GetDailyCompletion(goalID uuid.UUID, day time.Time) (*models.DailyCompletion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	day = models.DayOf(day)
	for _, c := range s.completions {
		if c.GoalID == goalID && c.Date.Equal(day) {
			return &c, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (s *Store) CreateDailyCompletion(completion *models.DailyCompletion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	completion.Date = models.DayOf(completion.Date)
	for _, c := range s.completions {
		if c.GoalID == completion.GoalID && c.Date.Equal(completion.Date) {
			return storage.ErrDuplicateDay
		}
	}
	if completion.ID == uuid.Nil {
		completion.ID = uuid.New()
	}
	s.completions[completion.ID] = *completion
	return nil
}

func (s *Store) CompletionsForGoal(goalID uuid.UUID) ([]models.DailyCompletion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var completions []models.DailyCompletion
	for _, c := range s.completions {
		if c.GoalID == goalID {
			completions = append(completions, c)
		}
	}
	sort.Slice(completions, func(i, j int) bool {
		return completions[i].Date.Before(completions[j].Date)
	})
	return completions, nil
}
