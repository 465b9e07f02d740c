package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lockedin/lockedin-api/internal/models"
	"github.com/lockedin/lockedin-api/internal/services"
)

type GoalHandler struct {
	goals *services.GoalService
}

func NewGoalHandler(goals *services.GoalService) *GoalHandler {
	return &GoalHandler{goals: goals}
}

func (h *GoalHandler) Create(c *fiber.Ctx) error {
	var req models.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := h.goals.Create(req)
	if err != nil {
		return respondError(c, err, "Goal not found")
	}
	return c.Status(fiber.StatusCreated).JSON(goal)
}

func (h *GoalHandler) List(c *fiber.Ctx) error {
	goals, err := h.goals.List()
	if err != nil {
		return respondError(c, err, "Goal not found")
	}
	if goals == nil {
		goals = []models.Goal{}
	}
	return c.JSON(goals)
}

func (h *GoalHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	goal, err := h.goals.Get(id)
	if err != nil {
		return respondError(c, err, "Goal not found")
	}
	return c.JSON(goal)
}

func (h *GoalHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var req models.UpdateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	goal, err := h.goals.Update(id, req)
	if err != nil {
		return respondError(c, err, "Goal not found")
	}
	return c.JSON(goal)
}

func (h *GoalHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	deleted, err := h.goals.Delete(id)
	if err != nil {
		return respondError(c, err, "Goal not found")
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Goal not found",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
