package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lockedin/lockedin-api/internal/models"
	"github.com/lockedin/lockedin-api/internal/storage"
)

// GamificationHandler serves rewards, the leaderboard and shame metrics.
type GamificationHandler struct {
	store storage.Storage
}

func NewGamificationHandler(store storage.Storage) *GamificationHandler {
	return &GamificationHandler{store: store}
}

func (h *GamificationHandler) ListRewards(c *fiber.Ctx) error {
	goalID, ok := parseID(c, "goalId")
	if !ok {
		return nil
	}

	rewards, err := h.store.Rewards(goalID)
	if err != nil {
		return respondError(c, err, "Goal not found")
	}
	if rewards == nil {
		rewards = []models.Reward{}
	}
	return c.JSON(rewards)
}

func (h *GamificationHandler) CreateReward(c *fiber.Ctx) error {
	goalID, ok := parseID(c, "goalId")
	if !ok {
		return nil
	}
	if _, err := h.store.GetGoal(goalID); err != nil {
		return respondError(c, err, "Goal not found")
	}

	var req models.CreateRewardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.RewardType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "rewardType is required",
		})
	}

	reward := &models.Reward{
		GoalID:       goalID,
		RewardType:   req.RewardType,
		PointsEarned: req.PointsEarned,
		BadgeName:    req.BadgeName,
		UnlockedAt:   time.Now(),
	}
	if err := h.store.CreateReward(reward); err != nil {
		return respondError(c, err, "Goal not found")
	}
	return c.Status(fiber.StatusCreated).JSON(reward)
}

func (h *GamificationHandler) ClaimReward(c *fiber.Ctx) error {
	rewardID, ok := parseID(c, "rewardId")
	if !ok {
		return nil
	}

	reward, err := h.store.GetReward(rewardID)
	if err != nil {
		return respondError(c, err, "Reward not found")
	}
	reward.Claimed = true
	if err := h.store.UpdateReward(reward); err != nil {
		return respondError(c, err, "Reward not found")
	}
	return c.JSON(reward)
}

func (h *GamificationHandler) GetLeaderboard(c *fiber.Ctx) error {
	entries, err := h.store.Leaderboard()
	if err != nil {
		return respondError(c, err, "Leaderboard not found")
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	return c.JSON(entries)
}

// UpsertLeaderboard creates or refreshes the entry for a goal and stamps it
// as active now.
func (h *GamificationHandler) UpsertLeaderboard(c *fiber.Ctx) error {
	var req models.UpsertLeaderboardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.UserName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "userName is required",
		})
	}
	if _, err := h.store.GetGoal(req.GoalID); err != nil {
		return respondError(c, err, "Goal not found")
	}

	entry, err := h.store.GetLeaderboardEntry(req.GoalID)
	if err != nil {
		entry = &models.LeaderboardEntry{GoalID: req.GoalID, IsAnonymous: true}
	}
	entry.UserName = req.UserName
	entry.StreakCount = req.StreakCount
	entry.TotalDays = req.TotalDays
	if req.IsAnonymous != nil {
		entry.IsAnonymous = *req.IsAnonymous
	}
	now := time.Now()
	entry.LastActiveDate = &now

	if err := h.store.SaveLeaderboardEntry(entry); err != nil {
		return respondError(c, err, "Goal not found")
	}
	return c.JSON(entry)
}

func (h *GamificationHandler) GetShameMetrics(c *fiber.Ctx) error {
	goalID, ok := parseID(c, "goalId")
	if !ok {
		return nil
	}

	metrics, err := h.store.GetShameMetrics(goalID)
	if err != nil {
		return respondError(c, err, "Shame metrics not found")
	}
	return c.JSON(metrics)
}

// UpdateShameMetrics upserts the per-goal shame counters: the row is created
// on first write, partial fields overlay the existing state after that.
func (h *GamificationHandler) UpdateShameMetrics(c *fiber.Ctx) error {
	goalID, ok := parseID(c, "goalId")
	if !ok {
		return nil
	}
	if _, err := h.store.GetGoal(goalID); err != nil {
		return respondError(c, err, "Goal not found")
	}

	var req models.UpdateShameMetricsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	metrics, err := h.store.GetShameMetrics(goalID)
	if err != nil {
		metrics = &models.ShameMetrics{GoalID: goalID}
	}
	if req.ConsecutiveSkips != nil {
		metrics.ConsecutiveSkips = *req.ConsecutiveSkips
	}
	if req.TotalSkips != nil {
		metrics.TotalSkips = *req.TotalSkips
	}
	if req.SocialMediaMinutesToday != nil {
		metrics.SocialMediaMinutesToday = *req.SocialMediaMinutesToday
	}
	if req.OpportunityCostHours != nil {
		metrics.OpportunityCostHours = *req.OpportunityCostHours
	}
	if req.LastShameNotification != nil {
		metrics.LastShameNotification = req.LastShameNotification
	}

	if err := h.store.SaveShameMetrics(metrics); err != nil {
		return respondError(c, err, "Goal not found")
	}
	return c.JSON(metrics)
}
