package config

// #nosec
const (
	ServerPort  = "SERVER_PORT"
	IsAtRemote  = "IS_AT_REMOTE"
	Environment = "NODE_ENV"

	JwtAccessSecret  = "JWT_ACCESS_SECRET"
	JwtRefreshSecret = "JWT_REFRESH_SECRET"
	JwtAccessExpiry  = "JWT_ACCESS_EXPIRY"
	JwtRefreshExpiry = "JWT_REFRESH_EXPIRY"
	JwtIssuer        = "JWT_ISSUER"

	TokenIssuerApiKey = "TOKEN_ISSUER_API_KEY"
)

// #nosec
const (
	ServerPortDefault     = "8080"
	EnvironmentProduction = "production"

	JwtAccessSecretDefault  = "cubcen-access-secret-change-in-production"
	JwtRefreshSecretDefault = "cubcen-refresh-secret-change-in-production"
	JwtAccessExpiryDefault  = "15m"
	JwtRefreshExpiryDefault = "7d"
	JwtIssuerDefault        = "cubcen"
)

const maskedSecret = "********"

type Config struct {
	ServerPort  string
	IsAtRemote  bool
	Environment string
	Jwt         JwtConfig

	// TokenIssuerApiKey is the shared key callers of POST /token must send.
	// Issuance is refused for everyone while it is empty.
	TokenIssuerApiKey string
}

// JwtConfig is a snapshot of the token settings. Expiry values are duration
// strings such as "15m" or "7d".
type JwtConfig struct {
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenExpiry  string
	RefreshTokenExpiry string
	Issuer             string
}
