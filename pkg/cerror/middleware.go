package cerror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"auth-token-api/pkg/logger"
)

// Middleware is the fiber error handler. Errors that are not a *CustomError
// are converted first so every failure is logged and rendered the same way.
func Middleware(ctx *fiber.Ctx, err error) error {
	var cerr *CustomError
	if !errors.As(err, &cerr) {
		cerr = fromUnknownError(err)
	}

	log := logger.FromContext(ctx.UserContext()).Desugar()
	log.Log(cerr.LogSeverity, cerr.LogMessage, cerr.LogFields...)

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return ctx.
		Status(cerr.HttpStatusCode).
		Send(cerr.Serialize())
}

func fromUnknownError(err error) *CustomError {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return NewError(fiberErr.Code, fiberErr.Message).
			SetSeverity(zapcore.WarnLevel).
			SetCode("", fiberErr.Message)
	}

	return NewError(
		fiber.StatusInternalServerError,
		"unexpected error",
		zap.Error(err),
	).SetCode(CodeInternalError, "unexpected error")
}
