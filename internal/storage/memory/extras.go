package memory

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lockedin/lockedin-api/internal/models"
	"github.com/lockedin/lockedin-api/internal/storage"
)

// Screen time

func (s *Store) ScreenTimeEntries(goalID uuid.UUID) ([]models.ScreenTimeEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []models.ScreenTimeEntry
	for _, e := range s.screenTime {
		if e.GoalID == goalID {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	return entries, nil
}

func (s *Store) CreateScreenTimeEntry(entry *models.ScreenTimeEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	s.screenTime[entry.ID] = *entry
	return nil
}

func (s *Store) ScreenTimeForDay(goalID uuid.UUID, day time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, e := range s.screenTime {
		if e.GoalID == goalID && models.SameDay(e.Date, day) {
			total += e.TimeSpentMinutes
		}
	}
	return total, nil
}

// Micro sessions

func (s *Store) MicroSessions(goalID uuid.UUID) ([]models.MicroSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sessions []models.MicroSession
	for _, m := range s.microSess {
		if m.GoalID == goalID {
			sessions = append(sessions, m)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CompletedAt.After(sessions[j].CompletedAt)
	})
	return sessions, nil
}

func (s *Store) CreateMicroSession(session *models.MicroSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	if session.CompletedAt.IsZero() {
		session.CompletedAt = time.Now()
	}
	s.microSess[session.ID] = *session
	return nil
}

// Focus sessions

func (s *Store) FocusSessions(goalID uuid.UUID) ([]models.FocusSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sessions []models.FocusSession
	for _, f := range s.focusSess {
		if f.GoalID == goalID {
			sessions = append(sessions, f)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTime.After(sessions[j].StartTime)
	})
	return sessions, nil
}

func (s *Store) GetFocusSession(id uuid.UUID) (*models.FocusSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.focusSess[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &session, nil
}

func (s *Store) CreateFocusSession(session *models.FocusSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	s.focusSess[session.ID] = *session
	return nil
}

func (s *Store) UpdateFocusSession(session *models.FocusSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.focusSess[session.ID]; !ok {
		return storage.ErrNotFound
	}
	s.focusSess[session.ID] = *session
	return nil
}

// Rewards

func (s *Store) Rewards(goalID uuid.UUID) ([]models.Reward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rewards []models.Reward
	for _, r := range s.rewards {
		if r.GoalID == goalID {
			rewards = append(rewards, r)
		}
	}
	sort.Slice(rewards, func(i, j int) bool {
		return rewards[i].UnlockedAt.After(rewards[j].UnlockedAt)
	})
	return rewards, nil
}

func (s *Store) CreateReward(reward *models.Reward) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if reward.ID == uuid.Nil {
		reward.ID = uuid.New()
	}
	if reward.UnlockedAt.IsZero() {
		reward.UnlockedAt = time.Now()
	}
	s.rewards[reward.ID] = *reward
	return nil
}

func (s *Store) GetReward(id uuid.UUID) (*models.Reward, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reward, ok := s.rewards[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &reward, nil
}

func (s *Store) UpdateReward(reward *models.Reward) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rewards[reward.ID]; !ok {
		return storage.ErrNotFound
	}
	s.rewards[reward.ID] = *reward
	return nil
}

// Leaderboard

func (s *Store) Leaderboard() ([]models.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.LeaderboardEntry, 0, len(s.leaderboard))
	for _, e := range s.leaderboard {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].StreakCount > entries[j].StreakCount
	})
	return entries, nil
}

func (s *Store) GetLeaderboardEntry(goalID uuid.UUID) (*models.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.leaderboard[goalID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &entry, nil
}

func (s *Store) SaveLeaderboardEntry(entry *models.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	s.leaderboard[entry.GoalID] = *entry
	return nil
}

// Shame metrics

func (s *Store) GetShameMetrics(goalID uuid.UUID) (*models.ShameMetrics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	metrics, ok := s.shame[goalID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &metrics, nil
}

func (s *Store) SaveShameMetrics(metrics *models.ShameMetrics) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if metrics.ID == uuid.Nil {
		metrics.ID = uuid.New()
	}
	s.shame[metrics.GoalID] = *metrics
	return nil
}
