package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"recipe-search-be/internal/dto"
	"recipe-search-be/internal/service"
	"recipe-search-be/pkg/search"
)

// ErrorHandlerMiddleware maps typed errors from the service layer
// onto HTTP statuses and the shared envelope. Controllers just bubble
// errors up.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		// Validation failures: rejected before any external call.
		var validationErr *dto.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).
				JSON(ErrorResponse(fiber.StatusBadRequest, validationErr.Error(), nil))
		}

		// Backend failures keep the original status when one exists,
		// otherwise degrade to a generic upstream failure.
		var backendErr *search.BackendError
		if errors.As(err, &backendErr) {
			code := backendErr.StatusCode
			if code == 0 {
				code = fiber.StatusBadGateway
			}
			return ctx.Status(code).
				JSON(ErrorResponse(code, "Search backend call failed", fiber.Map{
					"detail": backendErr.Detail,
				}))
		}

		var detailErr *search.DetailError
		if errors.As(err, &detailErr) {
			code := fiber.StatusBadGateway
			return ctx.Status(code).
				JSON(ErrorResponse(code, "Recipe detail fetch failed", fiber.Map{
					"detail": detailErr.Detail,
				}))
		}

		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).
				JSON(ErrorResponse(fiber.StatusNotFound, "Session not found or expired", nil))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).
				JSON(ErrorResponse(fiberErr.Code, fiberErr.Message, nil))
		}

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error", nil))
	}
}
