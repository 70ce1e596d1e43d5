package middleware

import (
	"fmt"
	"strconv"
	"time"

	"quiz-zone/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the validation middleware.
const (
	LocalsDate  = "validated_date"
	LocalsMonth = "validated_month"
	LocalsDay   = "validated_day"
	LocalsPage  = "validated_page"
)

// ValidationMiddleware validates query parameters shared by several routes.
type ValidationMiddleware struct {
	now domain.Clock
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(now domain.Clock) *ValidationMiddleware {
	if now == nil {
		now = time.Now
	}
	return &ValidationMiddleware{now: now}
}

// ValidateDate parses ?date=YYYY-MM-DD, defaulting to today (UTC).
func (vm *ValidationMiddleware) ValidateDate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := domain.TruncateDay(vm.now())
		if raw := c.Query("date"); raw != "" {
			parsed, err := time.Parse("2006-01-02", raw)
			if err != nil {
				return domain.ValidationErrors{{Field: "date", Message: "must be a date in YYYY-MM-DD format"}}
			}
			date = parsed
		}
		c.Locals(LocalsDate, date)
		return c.Next()
	}
}

// ValidateCalendarDay parses ?month=&day=, defaulting to today.
func (vm *ValidationMiddleware) ValidateCalendarDay() fiber.Handler {
	return func(c *fiber.Ctx) error {
		today := vm.now().UTC()
		var errs domain.ValidationErrors

		month, err := queryInt(c, "month", int(today.Month()))
		if err != nil || month < 1 || month > 12 {
			errs = append(errs, domain.ValidationError{Field: "month", Message: "must be between 1 and 12"})
		}
		day, err := queryInt(c, "day", today.Day())
		if err != nil || day < 1 || day > 31 {
			errs = append(errs, domain.ValidationError{Field: "day", Message: "must be between 1 and 31"})
		}
		if len(errs) > 0 {
			return errs
		}

		c.Locals(LocalsMonth, month)
		c.Locals(LocalsDay, day)
		return c.Next()
	}
}

// ValidatePage parses ?page=, defaulting to 1.
func (vm *ValidationMiddleware) ValidatePage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := queryInt(c, "page", 1)
		if err != nil || page < 1 {
			return domain.ValidationErrors{{Field: "page", Message: "must be a positive number"}}
		}
		c.Locals(LocalsPage, page)
		return c.Next()
	}
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	return n, nil
}
