package handler

import (
	"time"

	"quiz-zone/internal/domain"
	"quiz-zone/internal/dto"
	"quiz-zone/internal/middleware"
	"quiz-zone/internal/service"

	"github.com/gofiber/fiber/v2"
)

// APIHandler serves the public JSON API.
type APIHandler struct {
	catalog service.CatalogService
}

// NewAPIHandler creates a new APIHandler instance
func NewAPIHandler(catalog service.CatalogService) *APIHandler {
	return &APIHandler{catalog: catalog}
}

// Home godoc
// @Summary Home page aggregate
// @Description Categories ordered by name with their newest published quizzes and site stats
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.HomeResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /home [get]
func (h *APIHandler) Home(c *fiber.Ctx) error {
	home, err := h.catalog.Home(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(home)
}

// Categories godoc
// @Summary List categories
// @Description Returns every category with subcategory and quiz counts
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.CategorySummary
// @Failure 500 {object} middleware.ErrorResponse
// @Router /categories [get]
func (h *APIHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.catalog.Categories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

// CategoryPage godoc
// @Summary Category listing
// @Description One page of published quizzes in a category, optionally narrowed to a subcategory
// @Tags catalog
// @Produce json
// @Param slug path string true "Category slug"
// @Param sub query string false "Subcategory slug"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} dto.CategoryPageResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /categories/{slug} [get]
func (h *APIHandler) CategoryPage(c *fiber.Ctx) error {
	page, err := h.catalog.CategoryPage(c.UserContext(), c.Params("slug"), c.Query("sub"), pageFromLocals(c))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// Quiz godoc
// @Summary Get a quiz
// @Description Returns a published quiz with its questions and related quizzes; counts a view
// @Tags quiz
// @Produce json
// @Param slug path string true "Quiz slug"
// @Success 200 {object} dto.QuizDetailResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{slug} [get]
func (h *APIHandler) Quiz(c *fiber.Ctx) error {
	detail, err := h.catalog.Quiz(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(detail)
}

// Score godoc
// @Summary Score a quiz attempt
// @Description Scores the submitted answers; per-question results are included once every question is answered
// @Tags quiz
// @Accept json
// @Produce json
// @Param slug path string true "Quiz slug"
// @Param request body dto.ScoreRequest true "Answers keyed by question index"
// @Success 200 {object} dto.ScoreResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quizzes/{slug}/score [post]
func (h *APIHandler) Score(c *fiber.Ctx) error {
	var req dto.ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	score, err := h.catalog.Score(c.UserContext(), c.Params("slug"), req.Answers)
	if err != nil {
		return err
	}
	return c.JSON(score)
}

// Horoscopes godoc
// @Summary Horoscopes of a day
// @Description Returns the twelve readings of a date (default today)
// @Tags horoscope
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.HoroscopeDayResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /horoscopes [get]
func (h *APIHandler) Horoscopes(c *fiber.Ctx) error {
	day, err := h.catalog.HoroscopeDay(c.UserContext(), dateFromLocals(c))
	if err != nil {
		return err
	}
	return c.JSON(day)
}

// Horoscope godoc
// @Summary Horoscope of one sign
// @Tags horoscope
// @Produce json
// @Param sign path string true "Zodiac sign"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.HoroscopeView
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /horoscopes/{sign} [get]
func (h *APIHandler) Horoscope(c *fiber.Ctx) error {
	view, err := h.catalog.Horoscope(c.UserContext(), c.Params("sign"), dateFromLocals(c))
	if err != nil {
		return err
	}
	return c.JSON(view)
}

// HistoryDay godoc
// @Summary Events on a calendar day
// @Description Returns published events that happened on month/day across all years (default today)
// @Tags history
// @Produce json
// @Param month query int false "Month (1-12)"
// @Param day query int false "Day (1-31)"
// @Success 200 {object} dto.HistoryDayResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Router /history [get]
func (h *APIHandler) HistoryDay(c *fiber.Ctx) error {
	month, day := calendarDayFromLocals(c)
	events, err := h.catalog.HistoryDay(c.UserContext(), month, day)
	if err != nil {
		return err
	}
	return c.JSON(events)
}

// HistoryCategories godoc
// @Summary Event categories in use
// @Tags history
// @Produce json
// @Success 200 {array} string
// @Router /history/categories [get]
func (h *APIHandler) HistoryCategories(c *fiber.Ctx) error {
	categories, err := h.catalog.HistoryCategories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

// HistoryByCategory godoc
// @Summary Events of one category
// @Tags history
// @Produce json
// @Param category path string true "Event category"
// @Success 200 {array} domain.PastEvent
// @Failure 400 {object} middleware.ErrorResponse
// @Router /history/category/{category} [get]
func (h *APIHandler) HistoryByCategory(c *fiber.Ctx) error {
	events, err := h.catalog.HistoryByCategory(c.UserContext(), c.Params("category"))
	if err != nil {
		return err
	}
	return c.JSON(events)
}

func pageFromLocals(c *fiber.Ctx) int {
	if page, ok := c.Locals(middleware.LocalsPage).(int); ok {
		return page
	}
	return 1
}

func dateFromLocals(c *fiber.Ctx) time.Time {
	if date, ok := c.Locals(middleware.LocalsDate).(time.Time); ok {
		return date
	}
	return domain.TruncateDay(time.Now())
}

func calendarDayFromLocals(c *fiber.Ctx) (int, int) {
	month, okMonth := c.Locals(middleware.LocalsMonth).(int)
	day, okDay := c.Locals(middleware.LocalsDay).(int)
	if !okMonth || !okDay {
		now := time.Now().UTC()
		return int(now.Month()), now.Day()
	}
	return month, day
}
