package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"quiz-assign/internal/domain"
	"quiz-assign/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"session not found", domain.NewSessionNotFoundError("S1"), fiber.StatusNotFound, "SESSION_NOT_FOUND"},
		{"template not found", domain.NewTemplateNotFoundError(9), fiber.StatusNotFound, "TEMPLATE_NOT_FOUND"},
		{"invalid input", domain.NewInvalidInputError("bad"), fiber.StatusBadRequest, "INVALID_INPUT"},
		{"unauthorized", domain.NewUnauthorizedError("who"), fiber.StatusUnauthorized, "UNAUTHORIZED"},
		{"submit in progress", domain.NewSubmitInProgressError("S1"), fiber.StatusConflict, "SUBMIT_IN_PROGRESS"},
		{"quiz creation failed", domain.NewQuizCreationFailedError(errors.New("db")), fiber.StatusBadGateway, "QUIZ_CREATION_FAILED"},
		{"internal", domain.NewInternalError("boom", errors.New("x")), fiber.StatusInternalServerError, "INTERNAL_ERROR"},
		{"fiber error", fiber.NewError(fiber.StatusMethodNotAllowed, "nope"), fiber.StatusMethodNotAllowed, "HTTP_ERROR"},
		{"unknown error", errors.New("surprise"), fiber.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
			app.Get("/", func(c *fiber.Ctx) error { return tc.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, resp.StatusCode)

			var body middleware.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.expectedCode, body.Code)
			assert.Equal(t, tc.expectedStatus, body.Status)
		})
	}
}

func TestErrorHandler_TemplateNotFoundDetails(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/", func(c *fiber.Ctx) error { return domain.NewTemplateNotFoundError(9) })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)

	var body middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(9), body.Details["index"])
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Get("/", func(c *fiber.Ctx) error {
		return domain.ValidationErrors{domain.NewMissingFieldError("index")}
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body middleware.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "index", body.Errors[0].Field)
}
