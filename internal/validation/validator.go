package validation

import (
	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/util"
	"unicode/utf8"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateRequest applies defaults and checks a generate request.
// The returned config is only meaningful when no errors are returned.
func (v *Validator) ValidateGenerateRequest(req *dto.GenerateQuizRequest) (domain.QuizConfig, domain.ValidationErrors) {
	var errors domain.ValidationErrors
	cfg := domain.QuizConfig{
		NumberOfQuestions: domain.DefaultNumberOfQuestions,
		DifficultyMode:    domain.DefaultDifficultyMode,
	}
	if req == nil {
		return cfg, domain.ValidationErrors{domain.NewMissingFieldError("topic")}
	}

	// Length is counted in characters, not bytes.
	if req.Topic == nil {
		errors = append(errors, domain.NewMissingFieldError("topic"))
	} else {
		cfg.Topic = *req.Topic
		switch n := utf8.RuneCountInString(*req.Topic); {
		case n < domain.MinTopicLength:
			errors = append(errors, domain.ValidationError{
				Field:   "topic",
				Code:    domain.CodeOutOfRange,
				Message: "Topic must be at least 5 characters",
				Value:   n,
			})
		case n > domain.MaxTopicLength:
			errors = append(errors, domain.ValidationError{
				Field:   "topic",
				Code:    domain.CodeOutOfRange,
				Message: "Topic must be less than 200 characters",
				Value:   n,
			})
		}
	}

	if req.NumberOfQuestions != nil {
		n := int(*req.NumberOfQuestions)
		if n < domain.MinNumberOfQuestions || n > domain.MaxNumberOfQuestions {
			errors = append(errors, domain.NewOutOfRangeError("numberOfQuestions", n, domain.MinNumberOfQuestions, domain.MaxNumberOfQuestions))
		}
		cfg.NumberOfQuestions = n
	}

	if req.DifficultyMode != nil {
		mode := domain.DifficultyMode(*req.DifficultyMode)
		if !mode.IsValid() {
			errors = append(errors, domain.NewInvalidFormatError("difficultyMode", *req.DifficultyMode))
		}
		cfg.DifficultyMode = mode
	}

	return cfg, errors
}

// IsValidQuizID reports whether id has the shape of a quiz identifier.
func IsValidQuizID(id string) bool {
	return util.IsValidULID(id)
}
