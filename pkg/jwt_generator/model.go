package jwt_generator

import "github.com/golang-jwt/jwt/v4"

const (
	TokenTypeBearer = "Bearer"

	// DefaultRefreshThreshold is the number of seconds before expiry at which
	// ShouldRefreshToken starts reporting true.
	DefaultRefreshThreshold int64 = 300

	tokenIdByteLength = 32
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleOperator Role = "OPERATOR"
	RoleViewer   Role = "VIEWER"

	DefaultRole = RoleViewer
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOperator, RoleViewer:
		return true
	}

	return false
}

type AccessTokenClaims struct {
	UserId string `json:"userId"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

type RefreshTokenClaims struct {
	UserId  string `json:"userId"`
	TokenId string `json:"tokenId"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
	TokenType    string `json:"tokenType"`
}
