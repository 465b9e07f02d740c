package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lockedin/lockedin-api/internal/models"
	"github.com/lockedin/lockedin-api/internal/services"
)

type StreakHandler struct {
	streaks *services.StreakService
}

func NewStreakHandler(streaks *services.StreakService) *StreakHandler {
	return &StreakHandler{streaks: streaks}
}

func (h *StreakHandler) Get(c *fiber.Ctx) error {
	goalID, ok := parseID(c, "goalId")
	if !ok {
		return nil
	}

	streak, err := h.streaks.Get(goalID)
	if err != nil {
		return respondError(c, err, "Streak not found")
	}
	return c.JSON(streak)
}

// CompleteToday marks the current day as done and returns the recomputed
// streak. A repeat call on the same day gets a 400 with the
// already_completed code.
func (h *StreakHandler) CompleteToday(c *fiber.Ctx) error {
	goalID, ok := parseID(c, "goalId")
	if !ok {
		return nil
	}

	streak, err := h.streaks.RecordCompletion(goalID, time.Now())
	if err != nil {
		return respondError(c, err, "Goal not found")
	}
	return c.JSON(streak)
}

func (h *StreakHandler) ListCompletions(c *fiber.Ctx) error {
	goalID, ok := parseID(c, "goalId")
	if !ok {
		return nil
	}

	completions, err := h.streaks.Completions(goalID)
	if err != nil {
		return respondError(c, err, "Goal not found")
	}
	if completions == nil {
		completions = []models.DailyCompletion{}
	}
	return c.JSON(completions)
}
