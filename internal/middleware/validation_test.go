package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"quiz-zone/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationMiddleware_CalendarDay(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 2, 29, 23, 0, 0, 0, time.UTC) }
	vm := middleware.NewValidationMiddleware(now)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		month, day     int
	}{
		{"defaults to today", "", fiber.StatusOK, 2, 29},
		{"explicit", "?month=12&day=31", fiber.StatusOK, 12, 31},
		{"zero month", "?month=0&day=1", fiber.StatusBadRequest, 0, 0},
		{"day 32", "?month=1&day=32", fiber.StatusBadRequest, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
			var month, day int
			app.Get("/api/history", vm.ValidateCalendarDay(), func(c *fiber.Ctx) error {
				month = c.Locals(middleware.LocalsMonth).(int)
				day = c.Locals(middleware.LocalsDay).(int)
				return c.SendStatus(fiber.StatusOK)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/api/history"+tt.query, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Equal(t, tt.month, month)
			assert.Equal(t, tt.day, day)
		})
	}
}
