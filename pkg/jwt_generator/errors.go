package jwt_generator

import "errors"

var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")

	ErrSecretNotDefined = errors.New("jwt secret is not defined")
)

const (
	messageAccessTokenExpired  = "token expired"
	messageInvalidAccessToken  = "invalid token"
	messageRefreshTokenExpired = "refresh token expired"
	messageInvalidRefreshToken = "invalid refresh token"
)

// TokenError is returned by the verify methods. errors.Is reports whether it
// is an ErrTokenExpired or an ErrInvalidToken, and Unwrap exposes the
// underlying parser error when there is one.
type TokenError struct {
	kind    error
	message string
	cause   error
}

func newTokenError(kind error, message string, cause error) *TokenError {
	return &TokenError{
		kind:    kind,
		message: message,
		cause:   cause,
	}
}

func (e *TokenError) Error() string {
	return e.message
}

func (e *TokenError) Is(target error) bool {
	return target == e.kind
}

func (e *TokenError) Unwrap() error {
	return e.cause
}

func (e *TokenError) IsExpired() bool {
	return e.kind == ErrTokenExpired
}
