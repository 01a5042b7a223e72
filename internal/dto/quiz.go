package dto

import (
	"quiz-forge/internal/domain"
	"quiz-forge/internal/util"
)

// GenerateQuizRequest is the body of POST /api/quiz/generate
// @Description Request body for generating a quiz
type GenerateQuizRequest struct {
	Topic             *string           `json:"topic" example:"Indonesian strata title regulations"`
	NumberOfQuestions *util.WholeNumber `json:"numberOfQuestions,omitempty" swaggertype:"integer" example:"10"`
	DifficultyMode    *string           `json:"difficultyMode,omitempty" enums:"mixed,easy,medium,hard" example:"mixed"`
}

// QuizResponse wraps a single quiz
// @Description A generated quiz
type QuizResponse struct {
	Quiz *domain.Quiz `json:"quiz"`
}

// QuizListResponse wraps every stored quiz, newest first
type QuizListResponse struct {
	Quizzes []*domain.Quiz `json:"quizzes"`
}

// Cache states reported by the health check
const (
	CacheStatusUp       = "up"
	CacheStatusDown     = "down"
	CacheStatusDisabled = "disabled"
)

// HealthResponse is returned by the health check. Status stays "ok" while
// Redis is down because the topic verdict cache is optional.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Cache  string `json:"cache" enums:"up,down,disabled" example:"up"`
}
