package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal     ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput ErrorCode = "INVALID_INPUT"
	CodeNotFound     ErrorCode = "NOT_FOUND"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Quiz specific errors
	CodeQuizNotFound    ErrorCode = "QUIZ_NOT_FOUND"
	CodeInvalidTopic    ErrorCode = "INVALID_TOPIC"
	CodeLLMServiceError ErrorCode = "LLM_SERVICE_ERROR"
	CodeQuizParseFailed ErrorCode = "QUIZ_PARSE_FAILED"
	CodeQuizMalformed   ErrorCode = "QUIZ_MALFORMED"
	CodeQuizMismatch    ErrorCode = "QUIZ_MISMATCH"
	CodeQuizEmpty       ErrorCode = "QUIZ_EMPTY"
)

// User-facing messages
const (
	MsgQuizNotFound     = "Quiz not found"
	MsgDefaultBadTopic  = "The topic is not related to the property industry or is too vague. Please provide a specific property industry topic."
	MsgTopicUnparseable = "Unable to validate topic. Please try again with a clearer property industry topic."
	MsgQuizParseFailed  = "Failed to parse quiz response from AI. Please try again."
	MsgQuizMalformed    = "Generated quiz data is malformed. Please try again with a different topic."
	MsgQuizMismatch     = "Generated quiz has mismatched questions and answers. Please try again."
	MsgQuizEmpty        = "No questions were generated. Please try a more specific topic."
	MsgLLMUnavailable   = "Failed to process with LLM service"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a detail entry that is returned to the client.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(CodeQuizNotFound, MsgQuizNotFound, nil).WithContext("id", quizID)
}

func NewInvalidTopicError(reason string) *DomainError {
	if strings.TrimSpace(reason) == "" {
		reason = MsgDefaultBadTopic
	}
	return NewError(CodeInvalidTopic, reason, nil)
}

func NewLLMServiceError(err error) *DomainError {
	return NewError(CodeLLMServiceError, MsgLLMUnavailable, err)
}

func NewQuizParseError(err error) *DomainError {
	return NewError(CodeQuizParseFailed, MsgQuizParseFailed, err)
}

func NewQuizMalformedError(err error) *DomainError {
	return NewError(CodeQuizMalformed, MsgQuizMalformed, err)
}

func NewQuizMismatchError(questions, answers int) *DomainError {
	return NewError(CodeQuizMismatch, MsgQuizMismatch, nil).
		WithContext("questions", questions).
		WithContext("answers", answers)
}

func NewQuizEmptyError() *DomainError {
	return NewError(CodeQuizEmpty, MsgQuizEmpty, nil)
}

// HasCode reports whether err is a DomainError carrying code.
func HasCode(err error, code ErrorCode) bool {
	de, ok := AsDomainError(err)
	return ok && de.Code == code
}

// AsDomainError unwraps err to a *DomainError.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
