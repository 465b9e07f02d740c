package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lockedin/lockedin-api/internal/services"
)

type CoachHandler struct {
	coach *services.CoachService
	goals *services.GoalService
}

func NewCoachHandler(coach *services.CoachService, goals *services.GoalService) *CoachHandler {
	return &CoachHandler{coach: coach, goals: goals}
}

type coachRequest struct {
	Message string    `json:"message"`
	GoalID  uuid.UUID `json:"goalId"`
}

// Respond answers a user message with a coach reply framed around the goal.
// Upstream failures degrade to a canned line inside the service, so this
// endpoint only fails on bad input.
func (h *CoachHandler) Respond(c *fiber.Ctx) error {
	var req coachRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "message is required",
		})
	}

	goal, err := h.goals.Get(req.GoalID)
	if err != nil {
		return respondError(c, err, "Goal not found")
	}

	return c.JSON(fiber.Map{
		"response": h.coach.Respond(req.Message, goal.Name),
	})
}
