package middleware

import (
	"strings"

	"quiz-zone/internal/domain"
	"quiz-zone/internal/logger"
	"quiz-zone/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	// SessionCookie holds the signed admin session token.
	SessionCookie = "admin_session"
	// AdminClaimsKey stores the validated claims in fiber.Ctx locals.
	AdminClaimsKey = "adminClaims"
	LoginPath      = "/admin/login"
)

// AdminSession guards the admin panel. API calls without a valid session
// get 401 JSON; page requests are redirected to the login page.
func AdminSession(authService service.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == LoginPath {
			return c.Next()
		}

		claims, err := authService.ValidateSession(c.UserContext(), c.Cookies(SessionCookie))
		if err != nil {
			logger.Get().Debug("Admin session rejected", zap.String("path", c.Path()), zap.Error(err))
			if strings.HasPrefix(c.Path(), "/admin/api") {
				return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
					Code:    string(domain.CodeUnauthorized),
					Message: "Admin session is missing or expired",
					Status:  fiber.StatusUnauthorized,
				})
			}
			return c.Redirect(LoginPath, fiber.StatusSeeOther)
		}

		c.Locals(AdminClaimsKey, claims)
		return c.Next()
	}
}
