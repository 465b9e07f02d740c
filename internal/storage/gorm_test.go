package storage_test

import (
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lockedin/lockedin-api/internal/database"
	"github.com/lockedin/lockedin-api/internal/models"
	"github.com/lockedin/lockedin-api/internal/storage"
)

func setupGormStore(t *testing.T) *storage.GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return storage.NewGormStore(db)
}

func createTestGoal(t *testing.T, store *storage.GormStore) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		Name:     "Write every morning",
		Deadline: time.Now().AddDate(0, 1, 0),
	}
	if err := store.CreateGoal(goal, &models.Streak{}); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}
	return goal
}

func TestGormStore_CreateGoalCreatesStreak(t *testing.T) {
	store := setupGormStore(t)
	goal := createTestGoal(t, store)

	streak, err := store.GetStreak(goal.ID)
	if err != nil {
		t.Fatalf("GetStreak failed: %v", err)
	}
	if streak.GoalID != goal.ID {
		t.Errorf("Streak bound to wrong goal: %v", streak.GoalID)
	}
	if streak.CurrentStreak != 0 || streak.BestStreak != 0 || streak.TotalCompleted != 0 {
		t.Errorf("Expected zeroed streak, got %+v", streak)
	}
}

func TestGormStore_DuplicateCompletionDay(t *testing.T) {
	store := setupGormStore(t)
	goal := createTestGoal(t, store)

	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	first := &models.DailyCompletion{GoalID: goal.ID, Date: day, Completed: true}
	if err := store.CreateDailyCompletion(first); err != nil {
		t.Fatalf("First CreateDailyCompletion failed: %v", err)
	}

	// Same calendar day at a different time of day hits the unique index.
	second := &models.DailyCompletion{GoalID: goal.ID, Date: day.Add(14 * time.Hour), Completed: true}
	err := store.CreateDailyCompletion(second)
	if !errors.Is(err, storage.ErrDuplicateDay) {
		t.Fatalf("Expected ErrDuplicateDay, got %v", err)
	}

	completions, err := store.CompletionsForGoal(goal.ID)
	if err != nil {
		t.Fatalf("CompletionsForGoal failed: %v", err)
	}
	if len(completions) != 1 {
		t.Errorf("Expected 1 completion, got %d", len(completions))
	}
}

func TestGormStore_GetDailyCompletionNormalizesDay(t *testing.T) {
	store := setupGormStore(t)
	goal := createTestGoal(t, store)

	noon := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	completion := &models.DailyCompletion{GoalID: goal.ID, Date: noon, Completed: true}
	if err := store.CreateDailyCompletion(completion); err != nil {
		t.Fatalf("CreateDailyCompletion failed: %v", err)
	}

	got, err := store.GetDailyCompletion(goal.ID, noon.Add(9*time.Hour))
	if err != nil {
		t.Fatalf("Expected lookup by another same-day timestamp to succeed: %v", err)
	}
	if !got.Completed {
		t.Error("Expected completed record")
	}
}

func TestGormStore_DeleteGoalCascades(t *testing.T) {
	store := setupGormStore(t)
	goal := createTestGoal(t, store)

	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	if err := store.CreateDailyCompletion(&models.DailyCompletion{GoalID: goal.ID, Date: day, Completed: true}); err != nil {
		t.Fatalf("CreateDailyCompletion failed: %v", err)
	}
	if err := store.CreateReward(&models.Reward{GoalID: goal.ID, RewardType: "streak", UnlockedAt: time.Now()}); err != nil {
		t.Fatalf("CreateReward failed: %v", err)
	}
	if err := store.SaveShameMetrics(&models.ShameMetrics{GoalID: goal.ID, TotalSkips: 2}); err != nil {
		t.Fatalf("SaveShameMetrics failed: %v", err)
	}

	deleted, err := store.DeleteGoal(goal.ID)
	if err != nil {
		t.Fatalf("DeleteGoal failed: %v", err)
	}
	if !deleted {
		t.Fatal("Expected true from DeleteGoal")
	}

	if _, err := store.GetGoal(goal.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected goal gone, got %v", err)
	}
	if _, err := store.GetStreak(goal.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected streak gone, got %v", err)
	}
	if _, err := store.GetShameMetrics(goal.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected shame metrics gone, got %v", err)
	}
	completions, _ := store.CompletionsForGoal(goal.ID)
	if len(completions) != 0 {
		t.Errorf("Expected no completions, got %d", len(completions))
	}
	rewards, _ := store.Rewards(goal.ID)
	if len(rewards) != 0 {
		t.Errorf("Expected no rewards, got %d", len(rewards))
	}
}

func TestGormStore_DeleteGoalMissing(t *testing.T) {
	store := setupGormStore(t)

	goal := createTestGoal(t, store)
	if _, err := store.DeleteGoal(goal.ID); err != nil {
		t.Fatalf("DeleteGoal failed: %v", err)
	}

	deleted, err := store.DeleteGoal(goal.ID)
	if err != nil {
		t.Fatalf("Second DeleteGoal errored: %v", err)
	}
	if deleted {
		t.Error("Expected false deleting an already-deleted goal")
	}
}

func TestGormStore_ScreenTimeForDay(t *testing.T) {
	store := setupGormStore(t)
	goal := createTestGoal(t, store)

	today := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	entries := []models.ScreenTimeEntry{
		{GoalID: goal.ID, AppName: "instagram", TimeSpentMinutes: 25, Date: today},
		{GoalID: goal.ID, AppName: "tiktok", TimeSpentMinutes: 40, Date: today.Add(6 * time.Hour)},
		{GoalID: goal.ID, AppName: "tiktok", TimeSpentMinutes: 90, Date: today.AddDate(0, 0, -1)},
	}
	for i := range entries {
		if err := store.CreateScreenTimeEntry(&entries[i]); err != nil {
			t.Fatalf("CreateScreenTimeEntry failed: %v", err)
		}
	}

	total, err := store.ScreenTimeForDay(goal.ID, today)
	if err != nil {
		t.Fatalf("ScreenTimeForDay failed: %v", err)
	}
	if total != 65 {
		t.Errorf("Expected 65 minutes for the day, got %d", total)
	}
}

func TestGormStore_LeaderboardOrder(t *testing.T) {
	store := setupGormStore(t)

	for _, tc := range []struct {
		name   string
		streak int
	}{
		{"Low", 2}, {"High", 30}, {"Mid", 11},
	} {
		goal := &models.Goal{Name: tc.name, Deadline: time.Now().AddDate(0, 1, 0)}
		if err := store.CreateGoal(goal, &models.Streak{}); err != nil {
			t.Fatalf("CreateGoal failed: %v", err)
		}
		entry := &models.LeaderboardEntry{GoalID: goal.ID, UserName: tc.name, StreakCount: tc.streak}
		if err := store.SaveLeaderboardEntry(entry); err != nil {
			t.Fatalf("SaveLeaderboardEntry failed: %v", err)
		}
	}

	entries, err := store.Leaderboard()
	if err != nil {
		t.Fatalf("Leaderboard failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].UserName != "High" || entries[1].UserName != "Mid" || entries[2].UserName != "Low" {
		t.Errorf("Wrong order: %s, %s, %s", entries[0].UserName, entries[1].UserName, entries[2].UserName)
	}
}
