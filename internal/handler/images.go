package handler

import (
	"bytes"

	"quiz-zone/internal/domain"
	"quiz-zone/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ImageHandler renders share cards on request.
type ImageHandler struct {
	catalog  service.CatalogService
	renderer domain.CardRenderer
}

func NewImageHandler(catalog service.CatalogService, renderer domain.CardRenderer) *ImageHandler {
	return &ImageHandler{catalog: catalog, renderer: renderer}
}

// QuizImage godoc
// @Summary Quiz Open Graph image
// @Tags images
// @Produce png
// @Param slug path string true "Quiz slug"
// @Success 200 {file} binary
// @Failure 404 {object} middleware.ErrorResponse
// @Router /quiz/{slug}/opengraph-image.png [get]
func (h *ImageHandler) QuizImage(c *fiber.Ctx) error {
	quiz, err := h.catalog.PublishedQuiz(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := h.renderer.RenderQuiz(&buf, *quiz); err != nil {
		return err
	}
	return sendPNG(c, buf.Bytes())
}

// HoroscopeImage godoc
// @Summary Horoscope share card
// @Tags images
// @Produce png
// @Param sign path string true "Zodiac sign"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Failure 404 {object} middleware.ErrorResponse
// @Router /horoscope/{sign}/image.png [get]
func (h *ImageHandler) HoroscopeImage(c *fiber.Ctx) error {
	view, err := h.catalog.Horoscope(c.UserContext(), c.Params("sign"), dateFromLocals(c))
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := h.renderer.RenderHoroscope(&buf, view.Horoscope); err != nil {
		return err
	}
	return sendPNG(c, buf.Bytes())
}

func sendPNG(c *fiber.Ctx, body []byte) error {
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.Send(body)
}
