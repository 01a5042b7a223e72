package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"quiz-forge/internal/domain"
	"quiz-forge/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newErrorApp(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/fail", func(c *fiber.Ctx) error { return err })
	return app
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	if len(body) > 0 {
		require.NoError(t, json.Unmarshal(body, &decoded))
	}
	return resp, decoded
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid input", domain.NewInvalidInputError("bad body"), http.StatusBadRequest, "INVALID_INPUT"},
		{"invalid topic", domain.NewInvalidTopicError(""), http.StatusBadRequest, "INVALID_TOPIC"},
		{"quiz not found", domain.NewQuizNotFoundError("01JAR5Q4ZC6D7S3Y8W9X0V1T2M"), http.StatusNotFound, "QUIZ_NOT_FOUND"},
		{"llm unavailable", domain.NewLLMServiceError(errors.New("dial tcp")), http.StatusServiceUnavailable, "LLM_SERVICE_ERROR"},
		{"parse failed", domain.NewQuizParseError(errors.New("eof")), http.StatusBadGateway, "QUIZ_PARSE_FAILED"},
		{"malformed", domain.NewQuizMalformedError(errors.New("schema")), http.StatusBadGateway, "QUIZ_MALFORMED"},
		{"mismatch", domain.NewQuizMismatchError(3, 2), http.StatusBadGateway, "QUIZ_MISMATCH"},
		{"empty", domain.NewQuizEmptyError(), http.StatusBadGateway, "QUIZ_EMPTY"},
		{"internal", domain.NewInternalError("Failed to store quiz", errors.New("x")), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doRequest(t, newErrorApp(tt.err), httptest.NewRequest(http.MethodGet, "/fail", nil))

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, body["code"])
			assert.EqualValues(t, tt.status, body["status"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestErrorHandler_Details(t *testing.T) {
	_, body := doRequest(t, newErrorApp(domain.NewQuizMismatchError(3, 2)), httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, domain.MsgQuizMismatch, body["message"])
	details, ok := body["details"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 3, details["questions"])
	assert.EqualValues(t, 2, details["answers"])

	_, body = doRequest(t, newErrorApp(domain.NewQuizEmptyError()), httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.NotContains(t, body, "details")
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	errs := domain.ValidationErrors{
		domain.NewMissingFieldError("topic"),
		domain.NewOutOfRangeError("numberOfQuestions", 25, 3, 20),
	}
	resp, body := doRequest(t, newErrorApp(errs), httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
	list, ok := body["errors"].([]interface{})
	require.True(t, ok)
	require.Len(t, list, 2)
	first := list[0].(map[string]interface{})
	assert.Equal(t, "topic", first["field"])
	assert.Equal(t, "MISSING_FIELD", first["code"])
	second := list[1].(map[string]interface{})
	assert.EqualValues(t, 25, second["value"])
}

func TestErrorHandler_FiberAndUnknownErrors(t *testing.T) {
	resp, body := doRequest(t, newErrorApp(fiber.ErrRequestEntityTooLarge), httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Equal(t, "HTTP_ERROR", body["code"])

	resp, body = doRequest(t, newErrorApp(errors.New("secret detail")), httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Internal server error", body["message"])
}

func TestRequestIDAndLogger(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString(middleware.RequestIDFromCtx(c))
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return domain.NewQuizNotFoundError("x")
	})

	t.Run("generated id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		id := resp.Header.Get(fiber.HeaderXRequestID)
		assert.Len(t, id, 36)
		assert.Equal(t, id, string(body))
	})

	t.Run("client id kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(fiber.HeaderXRequestID, "trace-123")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "trace-123", resp.Header.Get(fiber.HeaderXRequestID))
	})

	t.Run("errors still rendered", func(t *testing.T) {
		resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/missing", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "QUIZ_NOT_FOUND", body["code"])
	})
}

func TestValidateQuizID(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/quiz/:id", middleware.ValidateQuizID(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/quiz/01JAR5Q4ZC6D7S3Y8W9X0V1T2M", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/quiz/not-a-ulid", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "QUIZ_NOT_FOUND", body["code"])
	assert.Equal(t, domain.MsgQuizNotFound, body["message"])
}
