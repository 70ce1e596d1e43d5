package handler

import (
	"fmt"
	"time"

	"quiz-zone/internal/config"
	"quiz-zone/internal/domain"
	"quiz-zone/internal/service"

	"github.com/gofiber/fiber/v2"
)

const mainLayout = "layouts/main"

// PageHandler renders the public HTML pages from the catalog.
type PageHandler struct {
	catalog service.CatalogService
	site    config.SiteConfig
}

func NewPageHandler(catalog service.CatalogService, site config.SiteConfig) *PageHandler {
	return &PageHandler{catalog: catalog, site: site}
}

func (h *PageHandler) render(c *fiber.Ctx, name, title, description string, data fiber.Map) error {
	data["Title"] = title
	data["Description"] = description
	data["SiteName"] = h.site.Name
	data["BaseURL"] = h.site.BaseURL
	data["Year"] = time.Now().Year()
	return c.Render(name, data, mainLayout)
}

func (h *PageHandler) Home(c *fiber.Ctx) error {
	home, err := h.catalog.Home(c.UserContext())
	if err != nil {
		return err
	}
	return h.render(c, "home", h.site.Name, "Free online quizzes across science, history, geography and more.", fiber.Map{
		"Home":  home,
		"Signs": domain.ZodiacSigns,
	})
}

func (h *PageHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.catalog.Categories(c.UserContext())
	if err != nil {
		return err
	}
	return h.render(c, "categories", "All categories", "Browse every quiz category.", fiber.Map{
		"Categories": categories,
	})
}

func (h *PageHandler) Category(c *fiber.Ctx) error {
	page, err := h.catalog.CategoryPage(c.UserContext(), c.Params("slug"), c.Query("sub"), pageFromLocals(c))
	if err != nil {
		return err
	}
	title := page.Category.Name + " quizzes"
	if page.ActiveSubCategory != nil {
		title = page.ActiveSubCategory.Name + " quizzes"
	}
	return h.render(c, "category", title, fmt.Sprintf("%d %s quizzes to play.", page.Meta.Total, page.Category.Name), fiber.Map{
		"Page":     page,
		"PrevPage": page.Meta.CurrentPage - 1,
		"NextPage": nextPage(page.Meta),
	})
}

func (h *PageHandler) Quiz(c *fiber.Ctx) error {
	detail, err := h.catalog.Quiz(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}
	return h.render(c, "quiz", detail.Quiz.QuizPageTitle, detail.Quiz.QuizPageDescription, fiber.Map{
		"Detail":   detail,
		"ImageURL": fmt.Sprintf("%s/quiz/%s/opengraph-image.png", h.site.BaseURL, detail.Quiz.Slug),
	})
}

func (h *PageHandler) Horoscope(c *fiber.Ctx) error {
	date := dateFromLocals(c)
	day, err := h.catalog.HoroscopeDay(c.UserContext(), date)
	if err != nil {
		return err
	}
	return h.render(c, "horoscope", "Daily horoscope", "Today's horoscope for all twelve zodiac signs.", fiber.Map{
		"Day":       day,
		"DateLabel": date.Format("January 2, 2006"),
		"PrevDate":  date.AddDate(0, 0, -1).Format("2006-01-02"),
		"NextDate":  date.AddDate(0, 0, 1).Format("2006-01-02"),
	})
}

func (h *PageHandler) History(c *fiber.Ctx) error {
	month, day := calendarDayFromLocals(c)
	events, err := h.catalog.HistoryDay(c.UserContext(), month, day)
	if err != nil {
		return err
	}
	categories, err := h.catalog.HistoryCategories(c.UserContext())
	if err != nil {
		return err
	}
	label := time.Date(2024, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format("January 2")
	return h.render(c, "history", "This day in history: "+label, "Historical events that happened on "+label+".", fiber.Map{
		"Events":     events,
		"Categories": categories,
		"DayLabel":   label,
	})
}

func nextPage(meta domain.PageMeta) int {
	if meta.CurrentPage >= meta.TotalPages {
		return 0
	}
	return meta.CurrentPage + 1
}
