//go:build unit

package token

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth-token-api/pkg/cerror"
	"auth-token-api/pkg/config"
	"auth-token-api/pkg/jwt_generator"
)

const (
	TestEmail        = "test@test.com"
	TestAccessToken  = "abcd.abcd.abcd"
	TestRefreshToken = "efgh.efgh.efgh"
)

var (
	TestUserId = uuid.New().String()

	TestJwtConfig = config.JwtConfig{
		AccessTokenSecret:  "test-access-secret",
		RefreshTokenSecret: "test-refresh-secret",
		AccessTokenExpiry:  "15m",
		RefreshTokenExpiry: "7d",
		Issuer:             "test-issuer",
	}
)

func newTestService(t *testing.T, opts ...jwt_generator.Option) (Service, jwt_generator.JwtGenerator) {
	t.Helper()

	jwtGenerator, err := jwt_generator.NewJwtGenerator(TestJwtConfig, opts...)
	require.NoError(t, err)

	return NewService(jwtGenerator), jwtGenerator
}

func pastClock() time.Time {
	return time.Now().Add(-30 * 24 * time.Hour)
}

func requireCustomError(t *testing.T, err error, code string) {
	t.Helper()

	var cerr *cerror.CustomError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, code, cerr.Code)
}

func TestNewService(t *testing.T) {
	tokenService := NewService(nil)

	assert.Implements(t, (*Service)(nil), tokenService)
}

func TestService_IssueTokens(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		tokenService, jwtGenerator := newTestService(t)

		tokens, err := tokenService.IssueTokens(context.Background(), &IssueTokenPayload{
			UserId: TestUserId,
			Email:  TestEmail,
			Role:   jwt_generator.RoleAdmin,
		})
		require.NoError(t, err)

		assert.Equal(t, jwt_generator.TokenTypeBearer, tokens.TokenType)
		assert.Equal(t, int64(900), tokens.ExpiresIn)

		claims, err := jwtGenerator.VerifyAccessToken(tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, TestUserId, claims.UserId)
		assert.Equal(t, jwt_generator.RoleAdmin, claims.Role)

		refreshClaims, err := jwtGenerator.VerifyRefreshToken(tokens.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, TestUserId, refreshClaims.UserId)
	})

	t.Run("when role is empty should issue default role", func(t *testing.T) {
		tokenService, jwtGenerator := newTestService(t)

		tokens, err := tokenService.IssueTokens(context.Background(), &IssueTokenPayload{
			UserId: TestUserId,
			Email:  TestEmail,
		})
		require.NoError(t, err)

		claims, err := jwtGenerator.VerifyAccessToken(tokens.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, jwt_generator.DefaultRole, claims.Role)
	})

	t.Run("when token generation fails should return error", func(t *testing.T) {
		mockController := gomock.NewController(t)
		defer mockController.Finish()

		mockJwtGenerator := jwt_generator.NewMockJwtGenerator(mockController)
		mockJwtGenerator.
			EXPECT().
			CreateTokenPair(TestUserId, TestEmail, jwt_generator.RoleOperator).
			Return(nil, errors.New("signing failed"))

		tokenService := NewService(mockJwtGenerator)
		tokens, err := tokenService.IssueTokens(context.Background(), &IssueTokenPayload{
			UserId: TestUserId,
			Email:  TestEmail,
			Role:   jwt_generator.RoleOperator,
		})

		assert.Nil(t, tokens)
		requireCustomError(t, err, cerror.CodeInternalError)
	})
}

func TestService_Authenticate(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		tokenService, jwtGenerator := newTestService(t)

		accessToken, err := jwtGenerator.CreateAccessToken(TestUserId, TestEmail, jwt_generator.RoleViewer)
		require.NoError(t, err)

		claims, err := tokenService.Authenticate(context.Background(), accessToken)
		require.NoError(t, err)
		assert.Equal(t, TestUserId, claims.UserId)
		assert.Equal(t, TestEmail, claims.Email)
	})

	t.Run("when token is expired should return token expired error", func(t *testing.T) {
		tokenService, _ := newTestService(t)
		_, pastGenerator := newTestService(t, jwt_generator.WithClock(pastClock))

		accessToken, err := pastGenerator.CreateAccessToken(TestUserId, TestEmail, jwt_generator.RoleViewer)
		require.NoError(t, err)

		claims, err := tokenService.Authenticate(context.Background(), accessToken)

		assert.Nil(t, claims)
		requireCustomError(t, err, cerror.CodeTokenExpired)
	})

	t.Run("when token is invalid should return invalid token error", func(t *testing.T) {
		tokenService, _ := newTestService(t)

		claims, err := tokenService.Authenticate(context.Background(), "invalid.token.value")

		assert.Nil(t, claims)
		requireCustomError(t, err, cerror.CodeInvalidToken)
	})

	t.Run("when refresh token is used as access token should return invalid token error", func(t *testing.T) {
		tokenService, jwtGenerator := newTestService(t)

		refreshToken, err := jwtGenerator.CreateRefreshToken(TestUserId)
		require.NoError(t, err)

		_, err = tokenService.Authenticate(context.Background(), refreshToken)
		requireCustomError(t, err, cerror.CodeInvalidToken)
	})
}

func TestService_IntrospectAccessToken(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		tokenService, jwtGenerator := newTestService(t)

		accessToken, err := jwtGenerator.CreateAccessToken(TestUserId, TestEmail, jwt_generator.RoleOperator)
		require.NoError(t, err)
		claims, err := jwtGenerator.VerifyAccessToken(accessToken)
		require.NoError(t, err)

		introspection := tokenService.IntrospectAccessToken(context.Background(), claims, accessToken)

		assert.Equal(t, TestUserId, introspection.UserId)
		assert.Equal(t, TestEmail, introspection.Email)
		assert.Equal(t, jwt_generator.RoleOperator, introspection.Role)
		assert.Equal(t, TestJwtConfig.Issuer, introspection.Issuer)
		assert.Equal(t, claims.ExpiresAt.Unix(), introspection.ExpiresAt)
		assert.InDelta(t, 900, introspection.RemainingTime, 2)
		assert.False(t, introspection.ShouldRefresh)
	})

	t.Run("when token is close to expiry should suggest refresh", func(t *testing.T) {
		nearExpiry := func() time.Time {
			return time.Now().Add(-14 * time.Minute)
		}
		tokenService, _ := newTestService(t)
		_, nearExpiryGenerator := newTestService(t, jwt_generator.WithClock(nearExpiry))

		accessToken, err := nearExpiryGenerator.CreateAccessToken(TestUserId, TestEmail, jwt_generator.RoleViewer)
		require.NoError(t, err)
		claims, err := nearExpiryGenerator.VerifyAccessToken(accessToken)
		require.NoError(t, err)

		introspection := tokenService.IntrospectAccessToken(context.Background(), claims, accessToken)

		assert.True(t, introspection.ShouldRefresh)
		assert.InDelta(t, 60, introspection.RemainingTime, 2)
	})
}

func TestService_IntrospectRefreshToken(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		tokenService, jwtGenerator := newTestService(t)

		refreshToken, err := jwtGenerator.CreateRefreshToken(TestUserId)
		require.NoError(t, err)

		introspection, err := tokenService.IntrospectRefreshToken(context.Background(), refreshToken)
		require.NoError(t, err)

		assert.Equal(t, TestUserId, introspection.UserId)
		assert.Len(t, introspection.TokenId, 64)
		assert.InDelta(t, 7*24*60*60, introspection.RemainingTime, 2)
		assert.InDelta(t, time.Now().Add(7*24*time.Hour).Unix(), introspection.ExpiresAt, 2)
	})

	t.Run("when refresh token is expired should return token expired error", func(t *testing.T) {
		tokenService, _ := newTestService(t)
		_, pastGenerator := newTestService(t, jwt_generator.WithClock(pastClock))

		refreshToken, err := pastGenerator.CreateRefreshToken(TestUserId)
		require.NoError(t, err)

		introspection, err := tokenService.IntrospectRefreshToken(context.Background(), refreshToken)

		assert.Nil(t, introspection)
		requireCustomError(t, err, cerror.CodeTokenExpired)
	})

	t.Run("when access token is used as refresh token should return invalid token error", func(t *testing.T) {
		tokenService, jwtGenerator := newTestService(t)

		accessToken, err := jwtGenerator.CreateAccessToken(TestUserId, TestEmail, jwt_generator.RoleViewer)
		require.NoError(t, err)

		introspection, err := tokenService.IntrospectRefreshToken(context.Background(), accessToken)

		assert.Nil(t, introspection)
		requireCustomError(t, err, cerror.CodeInvalidToken)
	})
}
