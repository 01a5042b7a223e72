package validation

import (
	"strings"
	"testing"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/dto"
	"quiz-forge/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *util.WholeNumber {
	n := util.WholeNumber(i)
	return &n
}

func TestValidateGenerateRequest_Defaults(t *testing.T) {
	cfg, errs := NewValidator().ValidateGenerateRequest(&dto.GenerateQuizRequest{
		Topic: strPtr("Zoning law in Jakarta"),
	})

	assert.Empty(t, errs)
	assert.Equal(t, "Zoning law in Jakarta", cfg.Topic)
	assert.Equal(t, 10, cfg.NumberOfQuestions)
	assert.Equal(t, domain.DifficultyModeMixed, cfg.DifficultyMode)
}

func TestValidateGenerateRequest_ExplicitValues(t *testing.T) {
	cfg, errs := NewValidator().ValidateGenerateRequest(&dto.GenerateQuizRequest{
		Topic:             strPtr("Mortgage refinancing"),
		NumberOfQuestions: intPtr(20),
		DifficultyMode:    strPtr("hard"),
	})

	assert.Empty(t, errs)
	assert.Equal(t, 20, cfg.NumberOfQuestions)
	assert.Equal(t, domain.DifficultyModeHard, cfg.DifficultyMode)
}

func TestValidateGenerateRequest_Topic(t *testing.T) {
	tests := []struct {
		name    string
		topic   *string
		code    domain.ErrorCode
		message string
	}{
		{"missing", nil, domain.CodeMissingField, "topic is required"},
		{"empty", strPtr(""), domain.CodeOutOfRange, "Topic must be at least 5 characters"},
		{"four characters", strPtr("land"), domain.CodeOutOfRange, "Topic must be at least 5 characters"},
		{"too long", strPtr(strings.Repeat("a", 201)), domain.CodeOutOfRange, "Topic must be less than 200 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := NewValidator().ValidateGenerateRequest(&dto.GenerateQuizRequest{Topic: tt.topic})
			require.Len(t, errs, 1)
			assert.Equal(t, "topic", errs[0].Field)
			assert.Equal(t, tt.code, errs[0].Code)
			assert.Equal(t, tt.message, errs[0].Message)
		})
	}
}

func TestValidateGenerateRequest_TopicBoundaries(t *testing.T) {
	v := NewValidator()

	_, errs := v.ValidateGenerateRequest(&dto.GenerateQuizRequest{Topic: strPtr("lease")})
	assert.Empty(t, errs)

	_, errs = v.ValidateGenerateRequest(&dto.GenerateQuizRequest{Topic: strPtr(strings.Repeat("a", 200))})
	assert.Empty(t, errs)

	// Five characters, fifteen bytes.
	_, errs = v.ValidateGenerateRequest(&dto.GenerateQuizRequest{Topic: strPtr("不动产法律")})
	assert.Empty(t, errs)
}

func TestValidateGenerateRequest_NumberOfQuestions(t *testing.T) {
	v := NewValidator()
	for _, n := range []int{3, 10, 20} {
		_, errs := v.ValidateGenerateRequest(&dto.GenerateQuizRequest{Topic: strPtr("Property law"), NumberOfQuestions: intPtr(n)})
		assert.Empty(t, errs, "count %d", n)
	}
	for _, n := range []int{-1, 0, 2, 21, 100} {
		_, errs := v.ValidateGenerateRequest(&dto.GenerateQuizRequest{Topic: strPtr("Property law"), NumberOfQuestions: intPtr(n)})
		require.Len(t, errs, 1, "count %d", n)
		assert.Equal(t, "numberOfQuestions", errs[0].Field)
		assert.Equal(t, domain.CodeOutOfRange, errs[0].Code)
		assert.Equal(t, n, errs[0].Value)
	}
}

func TestValidateGenerateRequest_DifficultyMode(t *testing.T) {
	_, errs := NewValidator().ValidateGenerateRequest(&dto.GenerateQuizRequest{
		Topic:          strPtr("Property law"),
		DifficultyMode: strPtr("expert"),
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "difficultyMode", errs[0].Field)
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
}

func TestValidateGenerateRequest_CollectsAllErrors(t *testing.T) {
	_, errs := NewValidator().ValidateGenerateRequest(&dto.GenerateQuizRequest{
		NumberOfQuestions: intPtr(1),
		DifficultyMode:    strPtr("Mixed"),
	})
	assert.Len(t, errs, 3)

	_, errs = NewValidator().ValidateGenerateRequest(nil)
	assert.Len(t, errs, 1)
}

func TestIsValidQuizID(t *testing.T) {
	assert.True(t, IsValidQuizID("01JAR5Q4ZC6D7S3Y8W9X0V1T2M"))
	assert.False(t, IsValidQuizID(""))
	assert.False(t, IsValidQuizID("01jar5q4zc6d7s3y8w9x0v1t2m"))
	assert.False(t, IsValidQuizID("01JAR5Q4ZC6D7S3Y8W9X0V1T2"))
	assert.False(t, IsValidQuizID("01JAR5Q4ZC6D7S3Y8W9X0V1TIL"))
}
