package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"auth-token-api/internal/token"
	"auth-token-api/pkg/config"
	"auth-token-api/pkg/jwt_generator"
	"auth-token-api/pkg/logger"
	"auth-token-api/pkg/server"
)

func main() {
	isAtRemote := os.Getenv(config.IsAtRemote)
	if isAtRemote == "" {
		// .env is optional locally, variables may come from the shell
		_ = godotenv.Load()
	}

	zapLogger, err := logger.NewLogger(os.Getenv(config.Environment))
	if err != nil {
		panic(err)
	}
	log := zapLogger.Sugar()
	defer func(l *zap.Logger) {
		_ = l.Sync()
	}(zapLogger)

	cfg := config.ReadConfig()
	cfg.Print()

	err = config.ValidateJwtConfig(log)
	if err != nil {
		log.Fatalw(
			"insecure jwt configuration",
			zap.Error(err),
		)
	}

	var jwtGenerator jwt_generator.JwtGenerator
	jwtGenerator, err = jwt_generator.NewJwtGenerator(cfg.Jwt)
	if err != nil {
		log.Fatalw(
			"failed to create jwt generator",
			zap.Error(err),
		)
	}

	if cfg.TokenIssuerApiKey == "" {
		log.Warnw(
			"token issuer api key is not set, token issuance is disabled",
			zap.String("variable", config.TokenIssuerApiKey),
		)
	}

	tokenService := token.NewService(jwtGenerator)
	tokenHandler := token.NewHandler(tokenService, cfg.TokenIssuerApiKey)

	var handlers []server.Handler
	handlers = append(handlers, tokenHandler)
	srv := server.NewServer(cfg, handlers)

	app := srv.GetFiberInstance()
	app.Use(cors.New())
	app.Use(logger.Middleware(log))

	srv.RegisterRoutes()

	if isAtRemote == "" {
		err = srv.Start()
		if err != nil {
			log.Fatalw(
				"server stopped unexpectedly",
				zap.Error(err),
			)
		}
	} else {
		lambda.Start(srv.LambdaProxyHandler)
	}
}
