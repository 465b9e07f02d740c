package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lockedin/lockedin-api/internal/models"
	"github.com/lockedin/lockedin-api/internal/storage"
)

// EngagementHandler serves the motivational side tables: screen time,
// micro sessions and focus sessions.
type EngagementHandler struct {
	store storage.Storage
}

func NewEngagementHandler(store storage.Storage) *EngagementHandler {
	return &EngagementHandler{store: store}
}

func (h *EngagementHandler) ListScreenTime(c *fiber.Ctx) error {
	goalID, ok := parseID(c, "goalId")
	if !ok {
		return nil
	}

	entries, err := h.store.ScreenTimeEntries(goalID)
	if err != nil {
		return respondError(c, err, "Goal not found")
	}
	if entries == nil {
		entries = []models.ScreenTimeEntry{}
	}
	return c.JSON(entries)
}

func (h *EngagementHandler) TodayScreenTime(c *fiber.Ctx) error {
	goalID, ok := parseID(c, "goalId")
	if !ok {
		return nil
	}

	minutes, err := h.store.ScreenTimeForDay(goalID, time.Now())
	if err != nil {
		return respondError(c, err, "Goal not found")
	}
	return c.JSON(minutes)
}

func (h *EngagementHandler) CreateScreenTime(c *fiber.Ctx) error {
	goalID, ok := parseID(c, "goalId")
	if !ok {
		return nil
	}
	if _, err := h.store.GetGoal(goalID); err != nil {
		return respondError(c, err, "Goal not found")
	}

	var req models.CreateScreenTimeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.AppName == "" || req.TimeSpentMinutes <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "appName and a positive timeSpentMinutes are required",
		})
	}
	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	entry := &models.ScreenTimeEntry{
		GoalID:           goalID,
		AppName:          req.AppName,
		TimeSpentMinutes: req.TimeSpentMinutes,
		Date:             date,
	}
	if err := h.store.CreateScreenTimeEntry(entry); err != nil {
		return respondError(c, err, "Goal not found")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *EngagementHandler) ListMicroSessions(c *fiber.Ctx) error {
	goalID, ok := parseID(c, "goalId")
	if !ok {
		return nil
	}

	sessions, err := h.store.MicroSessions(goalID)
	if err != nil {
		return respondError(c, err, "Goal not found")
	}
	if sessions == nil {
		sessions = []models.MicroSession{}
	}
	return c.JSON(sessions)
}

func (h *EngagementHandler) CreateMicroSession(c *fiber.Ctx) error {
	goalID, ok := parseID(c, "goalId")
	if !ok {
		return nil
	}
	if _, err := h.store.GetGoal(goalID); err != nil {
		return respondError(c, err, "Goal not found")
	}

	var req models.CreateMicroSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.DurationSeconds <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "durationSeconds must be positive",
		})
	}

	session := &models.MicroSession{
		GoalID:           goalID,
		DurationSeconds:  req.DurationSeconds,
		DistractionCount: req.DistractionCount,
		FocusScore:       req.FocusScore,
		CompletedAt:      time.Now(),
	}
	if err := h.store.CreateMicroSession(session); err != nil {
		return respondError(c, err, "Goal not found")
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *EngagementHandler) ListFocusSessions(c *fiber.Ctx) error {
	goalID, ok := parseID(c, "goalId")
	if !ok {
		return nil
	}

	sessions, err := h.store.FocusSessions(goalID)
	if err != nil {
		return respondError(c, err, "Goal not found")
	}
	if sessions == nil {
		sessions = []models.FocusSession{}
	}
	return c.JSON(sessions)
}

func (h *EngagementHandler) CreateFocusSession(c *fiber.Ctx) error {
	goalID, ok := parseID(c, "goalId")
	if !ok {
		return nil
	}
	if _, err := h.store.GetGoal(goalID); err != nil {
		return respondError(c, err, "Goal not found")
	}

	var req models.CreateFocusSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.PlannedDurationMinutes <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "plannedDurationMinutes must be positive",
		})
	}
	start := req.StartTime
	if start.IsZero() {
		start = time.Now()
	}

	session := &models.FocusSession{
		GoalID:                 goalID,
		StartTime:              start,
		PlannedDurationMinutes: req.PlannedDurationMinutes,
	}
	if err := h.store.CreateFocusSession(session); err != nil {
		return respondError(c, err, "Goal not found")
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *EngagementHandler) UpdateFocusSession(c *fiber.Ctx) error {
	sessionID, ok := parseID(c, "sessionId")
	if !ok {
		return nil
	}

	session, err := h.store.GetFocusSession(sessionID)
	if err != nil {
		return respondError(c, err, "Focus session not found")
	}

	var req models.UpdateFocusSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.EndTime != nil {
		session.EndTime = req.EndTime
	}
	if req.ActualDurationMinutes != nil {
		session.ActualDurationMinutes = req.ActualDurationMinutes
	}
	if req.DistractionEvents != nil {
		session.DistractionEvents = *req.DistractionEvents
	}
	if req.CompletionRate != nil {
		session.CompletionRate = *req.CompletionRate
	}

	if err := h.store.UpdateFocusSession(session); err != nil {
		return respondError(c, err, "Focus session not found")
	}
	return c.JSON(session)
}
