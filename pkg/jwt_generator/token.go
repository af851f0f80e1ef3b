package jwt_generator

import (
	"math"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
)

// ExtractTokenFromHeader returns the token of an "Authorization: Bearer <token>"
// header. The header must split on single spaces into exactly two parts.
func ExtractTokenFromHeader(authHeader string) (string, bool) {
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != TokenTypeBearer {
		return "", false
	}

	return parts[1], true
}

// IsTokenExpired reports true when the token fails verification against
// secret for any reason, not only when it is expired. The issuer is not
// checked.
func IsTokenExpired(rawJwtToken, secret string) bool {
	_, err := jwt.Parse(rawJwtToken, hmacKeyFunc(secret))
	return err != nil
}

// DecodeTokenUnsafe returns the claims of a token without verifying its
// signature, or nil when the token is not a well formed JWT: three segments
// with a base64url JSON object header and payload. The signing algorithm is
// not looked at. Never use the result for authorization.
func DecodeTokenUnsafe(rawJwtToken string) jwt.MapClaims {
	segments := strings.Split(rawJwtToken, ".")
	if len(segments) != 3 {
		return nil
	}

	var header map[string]interface{}
	if !decodeJsonSegment(segments[0], &header) || header == nil {
		return nil
	}

	var claims jwt.MapClaims
	if !decodeJsonSegment(segments[1], &claims) || claims == nil {
		return nil
	}

	return claims
}

func decodeJsonSegment(segment string, v interface{}) bool {
	decoded, err := jwt.DecodeSegment(segment)
	if err != nil {
		return false
	}

	return json.Unmarshal(decoded, v) == nil
}

// TokenRemainingTime returns the seconds left until the token's exp claim,
// never less than zero. ok is false when the token cannot be decoded or has no
// expiry.
func TokenRemainingTime(rawJwtToken string) (remaining int64, ok bool) {
	claims := DecodeTokenUnsafe(rawJwtToken)
	if claims == nil {
		return 0, false
	}

	expiresAt, ok := claims["exp"].(float64)
	if !ok || expiresAt == 0 {
		return 0, false
	}

	now := time.Now().Unix()
	if expiresAt <= float64(now) {
		return 0, true
	}

	if expiresAt >= math.MaxInt64 {
		return math.MaxInt64 - now, true
	}

	return int64(expiresAt) - now, true
}

// ShouldRefreshToken reports whether the token expires within thresholdSeconds
// or has no readable expiry. Callers without a preference pass
// DefaultRefreshThreshold.
func ShouldRefreshToken(rawJwtToken string, thresholdSeconds int64) bool {
	remaining, ok := TokenRemainingTime(rawJwtToken)
	if !ok {
		return true
	}

	return remaining <= thresholdSeconds
}
