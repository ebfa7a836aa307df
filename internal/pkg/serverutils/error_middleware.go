package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrorHandlerMiddleware converts errors bubbling out of handlers into the
// standard JSON envelope so controllers can simply `return err`.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			code = fiberErr.Code
			message = fiberErr.Message
		case errors.Is(err, gorm.ErrRecordNotFound):
			code = fiber.StatusNotFound
			message = "Record not found"
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}
