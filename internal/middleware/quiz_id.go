package middleware

import (
	"quiz-forge/internal/domain"
	"quiz-forge/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ValidateQuizID rejects malformed :id path parameters before they reach a
// handler. A malformed id cannot name a stored quiz, so it is reported as
// QUIZ_NOT_FOUND.
func ValidateQuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !validation.IsValidQuizID(id) {
			return domain.NewQuizNotFoundError(id)
		}
		return c.Next()
	}
}
