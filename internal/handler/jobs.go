package handler

import (
	"quiz-zone/internal/dto"
	"quiz-zone/internal/service"

	"github.com/gofiber/fiber/v2"
)

// JobHandler lets an admin trigger a generation job by hand.
type JobHandler struct {
	runner *service.JobRunner
}

func NewJobHandler(runner *service.JobRunner) *JobHandler {
	return &JobHandler{runner: runner}
}

// Trigger godoc
// @Summary Run a generation job
// @Description Runs quiz, horoscope or past-event generation now, optionally pinned to a date
// @Tags admin
// @Accept json
// @Produce json
// @Param name path string true "Job name"
// @Param request body dto.JobRequest false "Optional date override"
// @Success 200 {object} dto.Result
// @Failure 400 {object} dto.Result
// @Failure 502 {object} dto.Result
// @Router /admin/api/jobs/{name} [post]
func (h *JobHandler) Trigger(c *fiber.Ctx) error {
	var req dto.JobRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("Invalid request body"))
		}
	}
	date, err := service.ParseJobDate(req.Date)
	if err != nil {
		return fail(c, err)
	}

	result, err := h.runner.Run(c.UserContext(), c.Params("name"), service.JobOptions{Date: date})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(result))
}
