package token

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"auth-token-api/pkg/cerror"
	"auth-token-api/pkg/jwt_generator"
	"auth-token-api/pkg/logger"
)

type Service interface {
	IssueTokens(ctx context.Context, payload *IssueTokenPayload) (*jwt_generator.TokenPair, error)
	Authenticate(ctx context.Context, rawAccessToken string) (*jwt_generator.AccessTokenClaims, error)
	IntrospectAccessToken(
		ctx context.Context,
		claims *jwt_generator.AccessTokenClaims,
		rawAccessToken string,
	) *AccessTokenIntrospection
	IntrospectRefreshToken(ctx context.Context, rawRefreshToken string) (*RefreshTokenIntrospection, error)
}

type service struct {
	jwtGenerator     jwt_generator.JwtGenerator
	refreshThreshold int64
}

func NewService(jwtGenerator jwt_generator.JwtGenerator) Service {
	return &service{
		jwtGenerator:     jwtGenerator,
		refreshThreshold: jwt_generator.DefaultRefreshThreshold,
	}
}

func (s *service) IssueTokens(ctx context.Context, payload *IssueTokenPayload) (*jwt_generator.TokenPair, error) {
	role := payload.Role
	if role == "" {
		role = jwt_generator.DefaultRole
	}

	tokens, err := s.jwtGenerator.CreateTokenPair(payload.UserId, payload.Email, role)
	if err != nil {
		return nil, cerror.ErrorGenerateTokens.WithFields(
			zap.String("userId", payload.UserId),
			zap.Error(err),
		)
	}

	logger.FromContext(ctx).Debugw(
		"token pair issued",
		zap.String("userId", payload.UserId),
		zap.String("role", string(role)),
	)
	return tokens, nil
}

func (s *service) Authenticate(ctx context.Context, rawAccessToken string) (*jwt_generator.AccessTokenClaims, error) {
	claims, err := s.jwtGenerator.VerifyAccessToken(rawAccessToken)
	if err != nil {
		return nil, verificationError(err)
	}

	return claims, nil
}

func (s *service) IntrospectAccessToken(
	_ context.Context,
	claims *jwt_generator.AccessTokenClaims,
	rawAccessToken string,
) *AccessTokenIntrospection {
	remainingTime, _ := jwt_generator.TokenRemainingTime(rawAccessToken)

	introspection := &AccessTokenIntrospection{
		UserId:        claims.UserId,
		Email:         claims.Email,
		Role:          claims.Role,
		Issuer:        claims.Issuer,
		RemainingTime: remainingTime,
		ShouldRefresh: jwt_generator.ShouldRefreshToken(rawAccessToken, s.refreshThreshold),
	}
	if claims.ExpiresAt != nil {
		introspection.ExpiresAt = claims.ExpiresAt.Unix()
	}

	return introspection
}

func (s *service) IntrospectRefreshToken(
	_ context.Context,
	rawRefreshToken string,
) (*RefreshTokenIntrospection, error) {
	claims, err := s.jwtGenerator.VerifyRefreshToken(rawRefreshToken)
	if err != nil {
		return nil, verificationError(err)
	}

	remainingTime, _ := jwt_generator.TokenRemainingTime(rawRefreshToken)

	introspection := &RefreshTokenIntrospection{
		UserId:        claims.UserId,
		TokenId:       claims.TokenId,
		RemainingTime: remainingTime,
	}
	if claims.ExpiresAt != nil {
		introspection.ExpiresAt = claims.ExpiresAt.Unix()
	}

	return introspection, nil
}

func verificationError(err error) error {
	if errors.Is(err, jwt_generator.ErrTokenExpired) {
		return cerror.ErrorTokenExpired.WithFields(zap.Error(err))
	}

	return cerror.ErrorInvalidToken.WithFields(zap.Error(err))
}
