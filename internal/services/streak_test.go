package services_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lockedin/lockedin-api/internal/models"
	"github.com/lockedin/lockedin-api/internal/services"
	"github.com/lockedin/lockedin-api/internal/storage"
	"github.com/lockedin/lockedin-api/internal/storage/memory"
)

// day returns a fixed base day shifted by n days. Using UTC noon exercises
// the normalization path: the engine must truncate to the calendar day.
func day(n int) time.Time {
	base := time.Date(2025, 3, 1, 12, 30, 0, 0, time.UTC)
	return base.AddDate(0, 0, n)
}

func setupStreak(t *testing.T) (*services.StreakService, *memory.Store, uuid.UUID) {
	t.Helper()

	store := memory.NewStore()
	goal := &models.Goal{
		Name:     "Run every day",
		Deadline: time.Now().AddDate(0, 1, 0),
	}
	if err := store.CreateGoal(goal, &models.Streak{}); err != nil {
		t.Fatalf("Failed to create goal: %v", err)
	}
	return services.NewStreakService(store), store, goal.ID
}

func mustComplete(t *testing.T, svc *services.StreakService, goalID uuid.UUID, d time.Time) *models.Streak {
	t.Helper()

	streak, err := svc.RecordCompletion(goalID, d)
	if err != nil {
		t.Fatalf("RecordCompletion(%s) failed: %v", d.Format("2006-01-02"), err)
	}
	return streak
}

func TestRecordCompletion_FirstDay(t *testing.T) {
	svc, _, goalID := setupStreak(t)

	streak := mustComplete(t, svc, goalID, day(0))

	if streak.CurrentStreak != 1 {
		t.Errorf("CurrentStreak: expected 1, got %d", streak.CurrentStreak)
	}
	if streak.BestStreak != 1 {
		t.Errorf("BestStreak: expected 1, got %d", streak.BestStreak)
	}
	if streak.TotalCompleted != 1 {
		t.Errorf("TotalCompleted: expected 1, got %d", streak.TotalCompleted)
	}
	if streak.LastCompletedDate == nil || !streak.LastCompletedDate.Equal(models.DayOf(day(0))) {
		t.Errorf("LastCompletedDate: expected %v, got %v", models.DayOf(day(0)), streak.LastCompletedDate)
	}
}

func TestRecordCompletion_ConsecutiveDays(t *testing.T) {
	svc, _, goalID := setupStreak(t)

	mustComplete(t, svc, goalID, day(0))
	mustComplete(t, svc, goalID, day(1))
	streak := mustComplete(t, svc, goalID, day(2))

	if streak.CurrentStreak != 3 {
		t.Errorf("CurrentStreak: expected 3, got %d", streak.CurrentStreak)
	}
	if streak.BestStreak != 3 {
		t.Errorf("BestStreak: expected 3, got %d", streak.BestStreak)
	}
	if streak.TotalCompleted != 3 {
		t.Errorf("TotalCompleted: expected 3, got %d", streak.TotalCompleted)
	}
}

func TestRecordCompletion_SameDayRejected(t *testing.T) {
	svc, _, goalID := setupStreak(t)

	mustComplete(t, svc, goalID, day(0))

	// Same calendar day at a different time of day must still be a duplicate.
	later := day(0).Add(9 * time.Hour)
	if _, err := svc.RecordCompletion(goalID, later); !errors.Is(err, services.ErrAlreadyCompleted) {
		t.Fatalf("Expected ErrAlreadyCompleted, got %v", err)
	}

	completions, err := svc.Completions(goalID)
	if err != nil {
		t.Fatalf("Completions failed: %v", err)
	}
	if len(completions) != 1 {
		t.Errorf("Expected exactly 1 completion record, got %d", len(completions))
	}

	streak, err := svc.Get(goalID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if streak.TotalCompleted != 1 {
		t.Errorf("TotalCompleted: expected 1 after rejected duplicate, got %d", streak.TotalCompleted)
	}
}

func TestRecordCompletion_GapResetsStreak(t *testing.T) {
	svc, _, goalID := setupStreak(t)

	mustComplete(t, svc, goalID, day(0))
	mustComplete(t, svc, goalID, day(1))
	streak := mustComplete(t, svc, goalID, day(5))

	if streak.CurrentStreak != 1 {
		t.Errorf("CurrentStreak: expected 1 after gap, got %d", streak.CurrentStreak)
	}
	if streak.BestStreak != 2 {
		t.Errorf("BestStreak: expected 2 to survive the gap, got %d", streak.BestStreak)
	}
	if streak.TotalCompleted != 3 {
		t.Errorf("TotalCompleted: expected 3, got %d", streak.TotalCompleted)
	}
}

func TestRecordCompletion_OutOfOrderRejected(t *testing.T) {
	svc, _, goalID := setupStreak(t)

	mustComplete(t, svc, goalID, day(5))

	_, err := svc.RecordCompletion(goalID, day(2))
	var verr *services.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError for out-of-order day, got %v", err)
	}

	// Counters must be untouched by the rejected call.
	streak, err := svc.Get(goalID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if streak.TotalCompleted != 1 || streak.CurrentStreak != 1 {
		t.Errorf("Counters changed after rejection: %+v", streak)
	}
}

func TestRecordCompletion_UnknownGoal(t *testing.T) {
	svc, _, _ := setupStreak(t)

	if _, err := svc.RecordCompletion(uuid.New(), day(0)); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for unknown goal, got %v", err)
	}
}

func TestRecordCompletion_ZeroDay(t *testing.T) {
	svc, _, goalID := setupStreak(t)

	_, err := svc.RecordCompletion(goalID, time.Time{})
	var verr *services.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError for zero day, got %v", err)
	}
}

func TestBestStreak_Monotonic(t *testing.T) {
	svc, _, goalID := setupStreak(t)

	// Runs of 3, 2 and 4 days separated by gaps.
	offsets := []int{0, 1, 2, 6, 7, 12, 13, 14, 15}

	prevBest := 0
	for _, n := range offsets {
		streak := mustComplete(t, svc, goalID, day(n))
		if streak.BestStreak < prevBest {
			t.Errorf("BestStreak decreased from %d to %d at day %d", prevBest, streak.BestStreak, n)
		}
		if streak.BestStreak < streak.CurrentStreak {
			t.Errorf("BestStreak %d < CurrentStreak %d at day %d", streak.BestStreak, streak.CurrentStreak, n)
		}
		if streak.TotalCompleted < streak.CurrentStreak {
			t.Errorf("TotalCompleted %d < CurrentStreak %d at day %d", streak.TotalCompleted, streak.CurrentStreak, n)
		}
		prevBest = streak.BestStreak
	}

	final, err := svc.Get(goalID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if final.CurrentStreak != 4 || final.BestStreak != 4 || final.TotalCompleted != 9 {
		t.Errorf("Final counters wrong: %+v", final)
	}
}

func TestScenario_SevenDayRunThenSkip(t *testing.T) {
	svc, _, goalID := setupStreak(t)

	var streak *models.Streak
	for n := 1; n <= 7; n++ {
		streak = mustComplete(t, svc, goalID, day(n))
	}
	if streak.CurrentStreak != 7 || streak.BestStreak != 7 {
		t.Fatalf("After 7 consecutive days: expected 7/7, got %d/%d", streak.CurrentStreak, streak.BestStreak)
	}

	// Day 8 is skipped; day 9 starts a fresh run.
	streak = mustComplete(t, svc, goalID, day(9))
	if streak.CurrentStreak != 1 {
		t.Errorf("CurrentStreak: expected 1, got %d", streak.CurrentStreak)
	}
	if streak.BestStreak != 7 {
		t.Errorf("BestStreak: expected 7, got %d", streak.BestStreak)
	}
	if streak.TotalCompleted != 8 {
		t.Errorf("TotalCompleted: expected 8, got %d", streak.TotalCompleted)
	}
}

func TestRecomputeFromHistory_MatchesIncremental(t *testing.T) {
	sequences := [][]int{
		{0},
		{0, 1, 2, 3},
		{0, 2, 4, 6},
		{0, 1, 5, 6, 7, 20},
		{3, 4, 5, 9, 10, 11, 12, 30},
	}

	for _, seq := range sequences {
		svc, _, goalID := setupStreak(t)

		for _, n := range seq {
			mustComplete(t, svc, goalID, day(n))
		}
		incremental, err := svc.Get(goalID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		snapshot := *incremental

		replayed, err := svc.RecomputeFromHistory(goalID)
		if err != nil {
			t.Fatalf("RecomputeFromHistory failed: %v", err)
		}

		if replayed.CurrentStreak != snapshot.CurrentStreak ||
			replayed.BestStreak != snapshot.BestStreak ||
			replayed.TotalCompleted != snapshot.TotalCompleted {
			t.Errorf("Replay mismatch for %v: incremental %d/%d/%d, replayed %d/%d/%d",
				seq,
				snapshot.CurrentStreak, snapshot.BestStreak, snapshot.TotalCompleted,
				replayed.CurrentStreak, replayed.BestStreak, replayed.TotalCompleted)
		}
		if replayed.LastCompletedDate == nil || snapshot.LastCompletedDate == nil {
			t.Fatalf("Missing LastCompletedDate for %v", seq)
		}
		if !replayed.LastCompletedDate.Equal(*snapshot.LastCompletedDate) {
			t.Errorf("Replay LastCompletedDate mismatch for %v: %v vs %v",
				seq, replayed.LastCompletedDate, snapshot.LastCompletedDate)
		}
	}
}
