package cerror

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap/zapcore"
)

const (
	CodeBadRequest    = "BAD_REQUEST"
	CodeMissingToken  = "MISSING_TOKEN"
	CodeTokenExpired  = "TOKEN_EXPIRED"
	CodeInvalidToken  = "INVALID_TOKEN"
	CodeInternalError = "INTERNAL_ERROR"
	CodeMissingApiKey = "MISSING_API_KEY"
	CodeInvalidApiKey = "INVALID_API_KEY"
)

var (
	ErrorBadRequest = NewError(
		fiber.StatusBadRequest,
		"malformed request body or query parameter",
	).
		SetSeverity(zapcore.WarnLevel).
		SetCode(CodeBadRequest, "malformed request")

	ErrorMissingToken = NewError(
		fiber.StatusUnauthorized,
		"authorization header is missing or malformed",
	).
		SetSeverity(zapcore.WarnLevel).
		SetCode(CodeMissingToken, "authorization header must be: Bearer <token>")

	ErrorTokenExpired = NewError(
		fiber.StatusUnauthorized,
		"token expired",
	).
		SetSeverity(zapcore.InfoLevel).
		SetCode(CodeTokenExpired, "token expired, please refresh")

	ErrorInvalidToken = NewError(
		fiber.StatusUnauthorized,
		"invalid token",
	).
		SetSeverity(zapcore.WarnLevel).
		SetCode(CodeInvalidToken, "invalid token, please re-authenticate")

	ErrorMissingApiKey = NewError(
		fiber.StatusUnauthorized,
		"token issuer api key is missing",
	).
		SetSeverity(zapcore.WarnLevel).
		SetCode(CodeMissingApiKey, "X-Api-Key header is required")

	ErrorInvalidApiKey = NewError(
		fiber.StatusUnauthorized,
		"token issuer api key is invalid",
	).
		SetSeverity(zapcore.WarnLevel).
		SetCode(CodeInvalidApiKey, "invalid api key")

	ErrorGenerateTokens = NewError(
		fiber.StatusInternalServerError,
		"error occurred while generate tokens",
	).
		SetCode(CodeInternalError, "tokens could not be generated")
)
