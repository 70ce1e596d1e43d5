package handler

import (
	"time"

	"quiz-zone/internal/domain"
	"quiz-zone/internal/dto"
	"quiz-zone/internal/middleware"
	"quiz-zone/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles admin login and logout.
type AuthHandler struct {
	authService  service.AuthService
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(authService service.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookie: secureCookie}
}

// LoginPage renders the admin login form.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.Render("admin/login", fiber.Map{"Title": "Admin login"}, mainLayout)
}

// Login godoc
// @Summary Admin login
// @Description Checks the admin password and sets the session cookie. Form posts are redirected to the panel.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Password"
// @Success 200 {object} dto.Result
// @Failure 401 {object} dto.Result
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil || req.Password == "" {
		return fail(c, domain.NewInvalidInputError("Password is required"))
	}

	token, err := h.authService.Login(c.UserContext(), req.Password)
	if err != nil {
		if isForm(c) {
			return c.Status(fiber.StatusUnauthorized).Render("admin/login", fiber.Map{
				"Title": "Admin login",
				"Error": "Invalid password",
			}, mainLayout)
		}
		return fail(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.authService.SessionTTL()),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	if isForm(c) {
		return c.Redirect("/admin", fiber.StatusSeeOther)
	}
	return c.JSON(dto.OK(nil))
}

// Logout godoc
// @Summary Admin logout
// @Tags admin
// @Success 303
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   h.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect(middleware.LoginPath, fiber.StatusSeeOther)
}

func isForm(c *fiber.Ctx) bool {
	return c.Is("urlencoded") || c.Is("multipart")
}
