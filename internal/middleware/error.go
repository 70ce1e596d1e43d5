package middleware

import (
	"errors"
	"net/http"
	"strings"

	"quiz-zone/internal/domain"
	"quiz-zone/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrorResponse represents validation error response
type ValidationErrorResponse struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Status  int                      `json:"status"`
	Errors  []domain.ValidationError `json:"errors"`
}

// ErrorTemplate is rendered for failed page requests.
const ErrorTemplate = "error"

// ErrorHandler is a centralized error handling middleware. Page requests get
// the styled error page; API requests get JSON.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		logger := logger.Get()

		var validationErrs domain.ValidationErrors
		if !domain.HasCode(err, domain.CodeGenerationSchema) && errors.As(err, &validationErrs) {
			logger.Warn("Validation errors occurred",
				zap.String("path", c.Path()),
				zap.Int("error_count", len(validationErrs)),
			)
			return c.Status(http.StatusBadRequest).JSON(ValidationErrorResponse{
				Code:    string(domain.CodeValidation),
				Message: "Request validation failed",
				Status:  http.StatusBadRequest,
				Errors:  validationErrs,
			})
		}

		response := ErrorResponse{
			Code:    string(domain.CodeInternal),
			Message: "Internal server error",
			Status:  http.StatusInternalServerError,
		}

		var domainErr *domain.DomainError
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &domainErr):
			response.Status = MapDomainErrorToHTTPStatus(domainErr)
			response.Code = string(domainErr.Code)
			response.Message = domainErr.Message
			fields := []zap.Field{
				zap.String("code", string(domainErr.Code)),
				zap.String("path", c.Path()),
				zap.Int("status", response.Status),
				zap.Error(domainErr.Err),
			}
			if response.Status >= http.StatusInternalServerError {
				logger.Error("Domain error occurred", fields...)
			} else {
				logger.Info("Request rejected", fields...)
			}
		case errors.As(err, &fiberErr):
			logger.Warn("Fiber error occurred",
				zap.Int("code", fiberErr.Code),
				zap.String("message", fiberErr.Message),
			)
			response.Code = "HTTP_ERROR"
			response.Message = fiberErr.Message
			response.Status = fiberErr.Code
			if fiberErr.Code == http.StatusNotFound {
				response.Code = string(domain.CodeNotFound)
			}
		default:
			logger.Error("Unknown error occurred",
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		if IsPageRequest(c) {
			renderErr := c.Status(response.Status).Render(ErrorTemplate, fiber.Map{
				"Title":    pageTitle(response.Status),
				"Status":   response.Status,
				"Message":  response.Message,
				"NotFound": response.Status == http.StatusNotFound,
			}, "layouts/main")
			if renderErr == nil {
				return nil
			}
			logger.Warn("Failed to render error page", zap.Error(renderErr))
		}
		return c.Status(response.Status).JSON(response)
	}
}

// MapDomainErrorToHTTPStatus maps domain errors to HTTP status codes
func MapDomainErrorToHTTPStatus(err *domain.DomainError) int {
	switch err.Code {
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidInput, domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	case domain.CodeConflict:
		return http.StatusConflict
	case domain.CodePreconditionFailed:
		return http.StatusUnprocessableEntity
	case domain.CodeLLMServiceError:
		return http.StatusServiceUnavailable
	case domain.CodeGenerationSchema, domain.CodeStorage, domain.CodePublish:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// IsPageRequest reports whether the request targets an HTML page rather than
// the JSON API or a generated asset.
func IsPageRequest(c *fiber.Ctx) bool {
	path := c.Path()
	if strings.HasPrefix(path, "/api") || strings.HasPrefix(path, "/admin/api") || strings.HasPrefix(path, "/swagger") {
		return false
	}
	if strings.HasSuffix(path, ".png") || strings.HasSuffix(path, ".xml") {
		return false
	}
	return c.Method() == fiber.MethodGet || c.Method() == fiber.MethodHead
}

func pageTitle(status int) string {
	if status == http.StatusNotFound {
		return "Page not found"
	}
	return http.StatusText(status)
}
