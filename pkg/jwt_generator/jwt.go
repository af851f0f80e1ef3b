package jwt_generator

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"auth-token-api/pkg/config"
)

type JwtGenerator interface {
	CreateAccessToken(userId, email string, role Role) (string, error)
	CreateRefreshToken(userId string) (string, error)
	CreateTokenPair(userId, email string, role Role) (*TokenPair, error)
	// GenerateToken is kept for older callers. It behaves like
	// CreateAccessToken and uses DefaultRole when role is empty.
	GenerateToken(userId, email string, role Role) (string, error)
	VerifyAccessToken(rawJwtToken string) (*AccessTokenClaims, error)
	VerifyRefreshToken(rawJwtToken string) (*RefreshTokenClaims, error)
}

type Option func(generator *jwtGenerator)

// WithClock replaces time.Now for issuing and verifying tokens.
func WithClock(now func() time.Time) Option {
	return func(generator *jwtGenerator) {
		generator.now = now
	}
}

type jwtGenerator struct {
	config config.JwtConfig
	now    func() time.Time
}

type verificationMessages struct {
	expired string
	invalid string
}

var (
	accessTokenMessages = verificationMessages{
		expired: messageAccessTokenExpired,
		invalid: messageInvalidAccessToken,
	}
	refreshTokenMessages = verificationMessages{
		expired: messageRefreshTokenExpired,
		invalid: messageInvalidRefreshToken,
	}
)

func NewJwtGenerator(jwtConfig config.JwtConfig, opts ...Option) (JwtGenerator, error) {
	if jwtConfig.AccessTokenSecret == "" || jwtConfig.RefreshTokenSecret == "" {
		return nil, ErrSecretNotDefined
	}

	generator := &jwtGenerator{
		config: jwtConfig,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(generator)
	}

	return generator, nil
}

func (jwtGenerator *jwtGenerator) CreateAccessToken(userId, email string, role Role) (string, error) {
	claims := AccessTokenClaims{
		UserId: userId,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwtGenerator.registeredClaims(
			userId,
			jwtGenerator.config.AccessTokenExpiry,
		),
	}

	return sign(claims, jwtGenerator.config.AccessTokenSecret)
}

func (jwtGenerator *jwtGenerator) CreateRefreshToken(userId string) (string, error) {
	tokenId, err := generateTokenId()
	if err != nil {
		return "", err
	}

	claims := RefreshTokenClaims{
		UserId:  userId,
		TokenId: tokenId,
		RegisteredClaims: jwtGenerator.registeredClaims(
			userId,
			jwtGenerator.config.RefreshTokenExpiry,
		),
	}

	return sign(claims, jwtGenerator.config.RefreshTokenSecret)
}

func (jwtGenerator *jwtGenerator) CreateTokenPair(userId, email string, role Role) (*TokenPair, error) {
	accessToken, err := jwtGenerator.CreateAccessToken(userId, email, role)
	if err != nil {
		return nil, err
	}

	refreshToken, err := jwtGenerator.CreateRefreshToken(userId)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    parseExpiry(jwtGenerator.config.AccessTokenExpiry),
		TokenType:    TokenTypeBearer,
	}, nil
}

func (jwtGenerator *jwtGenerator) GenerateToken(userId, email string, role Role) (string, error) {
	if role == "" {
		role = DefaultRole
	}

	return jwtGenerator.CreateAccessToken(userId, email, role)
}

func (jwtGenerator *jwtGenerator) VerifyAccessToken(rawJwtToken string) (*AccessTokenClaims, error) {
	var claims AccessTokenClaims
	err := jwtGenerator.verify(
		rawJwtToken,
		&claims,
		&claims.RegisteredClaims,
		jwtGenerator.config.AccessTokenSecret,
		accessTokenMessages,
	)
	if err != nil {
		return nil, err
	}

	return &claims, nil
}

func (jwtGenerator *jwtGenerator) VerifyRefreshToken(rawJwtToken string) (*RefreshTokenClaims, error) {
	var claims RefreshTokenClaims
	err := jwtGenerator.verify(
		rawJwtToken,
		&claims,
		&claims.RegisteredClaims,
		jwtGenerator.config.RefreshTokenSecret,
		refreshTokenMessages,
	)
	if err != nil {
		return nil, err
	}

	return &claims, nil
}

func (jwtGenerator *jwtGenerator) registeredClaims(userId, expiry string) jwt.RegisteredClaims {
	now := jwtGenerator.now().UTC()
	return jwt.RegisteredClaims{
		Subject:   userId,
		Issuer:    jwtGenerator.config.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration(expiry))),
	}
}

// verify checks the signature first and the registered claims afterwards, so
// that an expired token is only reported as expired when its signature is
// valid. Like jwt.Parse, it accepts a token without exp or nbf. registered
// must point into claims.
func (jwtGenerator *jwtGenerator) verify(
	rawJwtToken string,
	claims jwt.Claims,
	registered *jwt.RegisteredClaims,
	secret string,
	messages verificationMessages,
) error {
	_, err := jwt.ParseWithClaims(
		rawJwtToken,
		claims,
		hmacKeyFunc(secret),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return newTokenError(ErrInvalidToken, messages.invalid, err)
	}

	now := jwtGenerator.now().UTC()
	if !registered.VerifyNotBefore(now, false) {
		return newTokenError(ErrInvalidToken, messages.invalid, jwt.ErrTokenNotValidYet)
	}

	if !registered.VerifyExpiresAt(now, false) {
		return newTokenError(ErrTokenExpired, messages.expired, jwt.ErrTokenExpired)
	}

	if !registered.VerifyIssuer(jwtGenerator.config.Issuer, true) {
		return newTokenError(ErrInvalidToken, messages.invalid, jwt.ErrTokenInvalidIssuer)
	}

	return nil
}

func sign(claims jwt.Claims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

func hmacKeyFunc(secret string) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}

		return []byte(secret), nil
	}
}

func generateTokenId() (string, error) {
	tokenId := make([]byte, tokenIdByteLength)
	_, err := rand.Read(tokenId)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(tokenId), nil
}
