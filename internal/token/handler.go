package token

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"auth-token-api/pkg/cerror"
	"auth-token-api/pkg/logger"
	"auth-token-api/pkg/server"
)

type handler struct {
	tokenService Service
	issuerApiKey string
	validate     *validator.Validate
}

func NewHandler(tokenService Service, issuerApiKey string) server.Handler {
	return &handler{
		tokenService: tokenService,
		issuerApiKey: issuerApiKey,
		validate:     validator.New(),
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	app.Post("/token", RequireIssuerApiKey(h.issuerApiKey), h.IssueTokens)
	app.Get("/token/introspect", Authenticate(h.tokenService), h.IntrospectAccessToken)
	app.Post("/token/refresh/introspect", h.IntrospectRefreshToken)
}

func (h *handler) IssueTokens(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.UserContext()).
		With(zap.String("eventName", "issueTokens"))
	userCtx := logger.InjectContext(ctx.UserContext(), log)

	var payload IssueTokenPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest.WithFields(zap.Error(err))
	}

	err = h.validate.Struct(payload)
	if err != nil {
		return cerror.ErrorBadRequest.WithFields(zap.Error(err))
	}

	tokens, err := h.tokenService.IssueTokens(userCtx, &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusCreated).
		JSON(tokens)
}

func (h *handler) IntrospectAccessToken(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.UserContext()).
		With(zap.String("eventName", "introspectAccessToken"))
	userCtx := logger.InjectContext(ctx.UserContext(), log)

	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return cerror.ErrorMissingToken
	}
	rawAccessToken, _ := ctx.Locals(AccessTokenContextKey).(string)

	introspection := h.tokenService.IntrospectAccessToken(userCtx, claims, rawAccessToken)

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(introspection)
}

func (h *handler) IntrospectRefreshToken(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.UserContext()).
		With(zap.String("eventName", "introspectRefreshToken"))
	userCtx := logger.InjectContext(ctx.UserContext(), log)

	var payload RefreshTokenPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest.WithFields(zap.Error(err))
	}

	err = h.validate.Struct(payload)
	if err != nil {
		return cerror.ErrorBadRequest.WithFields(zap.Error(err))
	}

	introspection, err := h.tokenService.IntrospectRefreshToken(userCtx, payload.RefreshToken)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(introspection)
}
