package handler

import (
	"errors"
	"strconv"

	"quiz-zone/internal/domain"
	"quiz-zone/internal/dto"
	"quiz-zone/internal/logger"
	"quiz-zone/internal/middleware"
	"quiz-zone/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminHandler serves the admin panel API. Every response is a dto.Result.
type AdminHandler struct {
	admin service.AdminService
}

// NewAdminHandler creates a new AdminHandler instance
func NewAdminHandler(admin service.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Dashboard renders the admin panel shell with the analytics summary.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	analytics, err := h.admin.Analytics(c.UserContext())
	if err != nil {
		return err
	}
	return c.Render("admin/dashboard", fiber.Map{
		"Title":     "Dashboard",
		"Analytics": analytics,
	}, mainLayout)
}

// Analytics godoc
// @Summary Admin analytics
// @Tags admin
// @Produce json
// @Success 200 {object} dto.Result
// @Failure 401 {object} middleware.ErrorResponse
// @Router /admin/api/analytics [get]
func (h *AdminHandler) Analytics(c *fiber.Ctx) error {
	analytics, err := h.admin.Analytics(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(analytics))
}

// ListQuizzes godoc
// @Summary List quizzes
// @Description Newest first, ten per page by default
// @Tags admin
// @Produce json
// @Param search query string false "Title search"
// @Param category query string false "Category slug"
// @Param difficulty query string false "easy, medium or hard"
// @Param published query bool false "Published filter"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.Result
// @Router /admin/api/quizzes [get]
func (h *AdminHandler) ListQuizzes(c *fiber.Ctx) error {
	filter := domain.QuizFilter{
		Search:       c.Query("search"),
		CategorySlug: c.Query("category"),
		Difficulty:   domain.Difficulty(c.Query("difficulty")),
		Page:         c.QueryInt("page", 1),
		Limit:        c.QueryInt("limit", 0),
	}
	if raw := c.Query("published"); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			return fail(c, domain.NewInvalidInputError("published must be true or false"))
		}
		filter.IsPublished = &published
	}

	page, err := h.admin.ListQuizzes(c.UserContext(), filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(page))
}

// GetQuiz godoc
// @Summary Get a quiz by id
// @Tags admin
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.Result
// @Failure 404 {object} dto.Result
// @Router /admin/api/quizzes/{id} [get]
func (h *AdminHandler) GetQuiz(c *fiber.Ctx) error {
	quiz, err := h.admin.GetQuiz(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(quiz))
}

// CreateQuiz godoc
// @Summary Create a quiz
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.QuizInput true "Quiz"
// @Success 201 {object} dto.Result
// @Failure 400 {object} dto.Result
// @Router /admin/api/quizzes [post]
func (h *AdminHandler) CreateQuiz(c *fiber.Ctx) error {
	var in dto.QuizInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, domain.NewInvalidInputError("Invalid request body"))
	}
	quiz, err := h.admin.CreateQuiz(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(quiz))
}

// UpdateQuiz godoc
// @Summary Replace a quiz
// @Description Scalar fields, questions and tags are replaced wholesale
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID"
// @Param request body dto.QuizInput true "Quiz"
// @Success 200 {object} dto.Result
// @Failure 400 {object} dto.Result
// @Failure 404 {object} dto.Result
// @Router /admin/api/quizzes/{id} [put]
func (h *AdminHandler) UpdateQuiz(c *fiber.Ctx) error {
	var in dto.QuizInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, domain.NewInvalidInputError("Invalid request body"))
	}
	quiz, err := h.admin.UpdateQuiz(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(quiz))
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Tags admin
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.Result
// @Router /admin/api/quizzes/{id} [delete]
func (h *AdminHandler) DeleteQuiz(c *fiber.Ctx) error {
	if err := h.admin.DeleteQuiz(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(nil))
}

// TogglePublish godoc
// @Summary Toggle the published flag
// @Tags admin
// @Produce json
// @Param id path string true "Quiz ID"
// @Success 200 {object} dto.Result
// @Router /admin/api/quizzes/{id}/toggle-publish [post]
func (h *AdminHandler) TogglePublish(c *fiber.Ctx) error {
	quiz, err := h.admin.TogglePublish(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(quiz))
}

// ListCategories godoc
// @Summary List categories with counts
// @Tags admin
// @Produce json
// @Success 200 {object} dto.Result
// @Router /admin/api/categories [get]
func (h *AdminHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.admin.ListCategories(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(categories))
}

// CreateCategory godoc
// @Summary Create a category
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.CategoryInput true "Category"
// @Success 201 {object} dto.Result
// @Router /admin/api/categories [post]
func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CategoryInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, domain.NewInvalidInputError("Invalid request body"))
	}
	category, err := h.admin.CreateCategory(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(category))
}

// UpdateCategory godoc
// @Summary Rename a category
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body dto.CategoryInput true "Category"
// @Success 200 {object} dto.Result
// @Router /admin/api/categories/{id} [put]
func (h *AdminHandler) UpdateCategory(c *fiber.Ctx) error {
	var in dto.CategoryInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, domain.NewInvalidInputError("Invalid request body"))
	}
	category, err := h.admin.UpdateCategory(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(category))
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Refused while quizzes reference the category
// @Tags admin
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.Result
// @Failure 422 {object} dto.Result
// @Router /admin/api/categories/{id} [delete]
func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.admin.DeleteCategory(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(nil))
}

// ListSubCategories godoc
// @Summary List subcategories of a category
// @Tags admin
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} dto.Result
// @Router /admin/api/categories/{id}/subcategories [get]
func (h *AdminHandler) ListSubCategories(c *fiber.Ctx) error {
	subs, err := h.admin.ListSubCategories(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(subs))
}

// CreateSubCategory godoc
// @Summary Create a subcategory
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body dto.CategoryInput true "Subcategory"
// @Success 201 {object} dto.Result
// @Router /admin/api/categories/{id}/subcategories [post]
func (h *AdminHandler) CreateSubCategory(c *fiber.Ctx) error {
	var in dto.CategoryInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, domain.NewInvalidInputError("Invalid request body"))
	}
	sub, err := h.admin.CreateSubCategory(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(sub))
}

// ListTags godoc
// @Summary List tags
// @Tags admin
// @Produce json
// @Success 200 {object} dto.Result
// @Router /admin/api/tags [get]
func (h *AdminHandler) ListTags(c *fiber.Ctx) error {
	tags, err := h.admin.ListTags(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(tags))
}

// CreateTag godoc
// @Summary Create a tag
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.TagInput true "Tag"
// @Success 201 {object} dto.Result
// @Router /admin/api/tags [post]
func (h *AdminHandler) CreateTag(c *fiber.Ctx) error {
	var in dto.TagInput
	if err := c.BodyParser(&in); err != nil {
		return fail(c, domain.NewInvalidInputError("Invalid request body"))
	}
	tag, err := h.admin.CreateTag(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(tag))
}

// fail converts a service error into a failed Result with a matching status.
func fail(c *fiber.Ctx, err error) error {
	// Schema errors wrap the model's field errors; those are not the caller's fault.
	var validationErrs domain.ValidationErrors
	if !domain.HasCode(err, domain.CodeGenerationSchema) && errors.As(err, &validationErrs) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Result{
			Success: false,
			Error:   "Validation failed",
			Data:    validationErrs,
		})
	}

	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		status := middleware.MapDomainErrorToHTTPStatus(domainErr)
		if status >= fiber.StatusInternalServerError {
			logger.Get().Error("Admin action failed", zap.String("path", c.Path()), zap.Error(err))
		}
		return c.Status(status).JSON(dto.Fail(domainErr.Message))
	}

	logger.Get().Error("Admin action failed", zap.String("path", c.Path()), zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail("Internal server error"))
}
