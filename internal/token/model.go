package token

import "auth-token-api/pkg/jwt_generator"

const (
	ClaimsContextKey      = "claims"
	AccessTokenContextKey = "accessToken"
	ApiKeyContextKey      = "apiKey"

	ApiKeyHeader = "X-Api-Key"
)

type IssueTokenPayload struct {
	UserId string             `json:"userId" validate:"required"`
	Email  string             `json:"email" validate:"required,email"`
	Role   jwt_generator.Role `json:"role" validate:"omitempty,oneof=ADMIN OPERATOR VIEWER"`
}

type RefreshTokenPayload struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type AccessTokenIntrospection struct {
	UserId        string             `json:"userId"`
	Email         string             `json:"email"`
	Role          jwt_generator.Role `json:"role"`
	Issuer        string             `json:"issuer"`
	ExpiresAt     int64              `json:"expiresAt"`
	RemainingTime int64              `json:"remainingTime"`
	ShouldRefresh bool               `json:"shouldRefresh"`
}

type RefreshTokenIntrospection struct {
	UserId        string `json:"userId"`
	TokenId       string `json:"tokenId"`
	ExpiresAt     int64  `json:"expiresAt"`
	RemainingTime int64  `json:"remainingTime"`
}
