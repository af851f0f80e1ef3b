package logger

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const (
	ContextKey      contextKey = "logger"
	RequestIdHeader            = "X-Request-Id"

	EventFinishedSuccessfully = "event successfully finished"
)

// Middleware attaches a per-request child logger to the request's user
// context. The request id is taken from X-Request-Id or generated.
func Middleware(log *zap.SugaredLogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		requestId := ctx.Get(RequestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		ctx.Set(RequestIdHeader, requestId)

		requestLog := log.With(
			zap.String("requestId", requestId),
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.Path()),
		)
		ctx.SetUserContext(InjectContext(ctx.UserContext(), requestLog))

		return ctx.Next()
	}
}

func FromContext(ctx context.Context) *zap.SugaredLogger {
	logger, isOk := ctx.Value(ContextKey).(*zap.SugaredLogger)
	if !isOk {
		l, _ := zap.NewProduction()
		logger = l.Sugar()
	}

	return logger
}

func InjectContext(ctx context.Context, log *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ContextKey, log)
}
