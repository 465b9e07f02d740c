package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lockedin/lockedin-api/internal/services"
	"github.com/lockedin/lockedin-api/internal/storage"
)

// parseID parses a UUID route parameter. On failure it writes the 400
// response itself and reports ok=false, so handlers just bail out.
func parseID(c *fiber.Ctx, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid " + param,
		})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps domain errors onto HTTP responses. Validation failures
// and the already-completed guard are 4xx with the original message; unknown
// errors are logged and returned as a generic 500 so storage failures are
// never silently swallowed or leaked verbatim.
func respondError(c *fiber.Ctx, err error, notFoundMsg string) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": verr.Message,
		})
	case errors.Is(err, services.ErrAlreadyCompleted):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Already completed today",
			"code":  "already_completed",
		})
	case errors.Is(err, storage.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": notFoundMsg,
		})
	default:
		log.Printf("internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}
}
