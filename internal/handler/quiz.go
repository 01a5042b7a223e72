package handler

import (
	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/logger"
	"quiz-forge/internal/service"
	"quiz-forge/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GenerateQuiz godoc
// @Summary Generate a quiz
// @Description Validates the topic with the LLM, generates a quiz with an answer key and stores it
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Quiz configuration"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quiz/generate [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Debug("Rejected generate request body", zap.Error(err))
		return domain.NewInvalidInputError("Request body must be a JSON object with a string topic, an integer numberOfQuestions and a string difficultyMode")
	}

	cfg, errs := h.validator.ValidateGenerateRequest(&req)
	if len(errs) > 0 {
		return errs
	}

	quiz, err := h.service.GenerateQuiz(c.UserContext(), cfg)
	if err != nil {
		return err
	}
	return c.JSON(dto.QuizResponse{Quiz: quiz})
}

// GetQuiz godoc
// @Summary Get a quiz
// @Description Returns a stored quiz by id
// @Tags quiz
// @Produce json
// @Param id path string true "Quiz ID (ULID)"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	quiz, err := h.service.GetQuiz(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.QuizResponse{Quiz: quiz})
}

// ExportQuiz godoc
// @Summary Export a quiz
// @Description Downloads a stored quiz with its answer key as plain text
// @Tags quiz
// @Produce plain
// @Param id path string true "Quiz ID (ULID)"
// @Success 200 {string} string "Quiz text"
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/{id}/export [get]
func (h *QuizHandler) ExportQuiz(c *fiber.Ctx) error {
	export, err := h.service.ExportQuiz(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	c.Attachment(export.FileName)
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(export.Content)
}

// ListQuizzes godoc
// @Summary List quizzes
// @Description Returns every stored quiz, newest first
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuizListResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /quizzes [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	quizzes, err := h.service.ListQuizzes(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.QuizListResponse{Quizzes: quizzes})
}
