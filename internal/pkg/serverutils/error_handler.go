package serverutils

import (
	"errors"

	"feedback-forum-be/internal/repository/repoerr"
	"feedback-forum-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps service and repository errors onto HTTP status
// codes so controllers can just return them.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		switch {
		case errors.Is(err, service.ErrNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(err.Error()))
		case errors.Is(err, service.ErrForbidden):
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(err.Error()))
		case errors.Is(err, service.ErrTitleRequired), errors.Is(err, service.ErrBodyRequired):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(err.Error()))
		}

		switch repoerr.KindOf(err) {
		case repoerr.NotFound:
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse("resource not found"))
		case repoerr.Conflict:
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse("conflicting resource state"))
		case repoerr.PermissionDenied:
			return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse("access denied"))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("internal server error"))
	}
}
