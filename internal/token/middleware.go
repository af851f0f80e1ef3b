package token

import (
	"crypto/subtle"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
	"go.uber.org/zap"

	"auth-token-api/pkg/cerror"
	"auth-token-api/pkg/jwt_generator"
	"auth-token-api/pkg/logger"
)

// Authenticate rejects requests without a valid bearer access token. On
// success the verified claims and the raw token are stored in ctx.Locals and
// the request logger gets the user id.
func Authenticate(tokenService Service) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		rawAccessToken, ok := jwt_generator.ExtractTokenFromHeader(ctx.Get(fiber.HeaderAuthorization))
		if !ok || rawAccessToken == "" {
			return cerror.ErrorMissingToken
		}

		claims, err := tokenService.Authenticate(ctx.UserContext(), rawAccessToken)
		if err != nil {
			return err
		}

		log := logger.FromContext(ctx.UserContext()).With(zap.String("userId", claims.UserId))
		ctx.SetUserContext(logger.InjectContext(ctx.UserContext(), log))
		ctx.Locals(ClaimsContextKey, claims)
		ctx.Locals(AccessTokenContextKey, rawAccessToken)

		return ctx.Next()
	}
}

// ClaimsFromContext returns the claims stored by Authenticate.
func ClaimsFromContext(ctx *fiber.Ctx) (*jwt_generator.AccessTokenClaims, bool) {
	claims, ok := ctx.Locals(ClaimsContextKey).(*jwt_generator.AccessTokenClaims)
	return claims, ok
}

// RequireIssuerApiKey guards token issuance with the shared key sent in the
// X-Api-Key header. Every request is rejected when apiKey is empty.
func RequireIssuerApiKey(apiKey string) fiber.Handler {
	return keyauth.New(keyauth.Config{
		KeyLookup:  "header:" + ApiKeyHeader,
		ContextKey: ApiKeyContextKey,
		Validator: func(_ *fiber.Ctx, key string) (bool, error) {
			if apiKey == "" {
				return false, nil
			}

			return subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1, nil
		},
		ErrorHandler: func(_ *fiber.Ctx, err error) error {
			if errors.Is(err, keyauth.ErrMissingOrMalformedAPIKey) {
				return cerror.ErrorMissingApiKey
			}

			return cerror.ErrorInvalidApiKey
		},
	})
}
