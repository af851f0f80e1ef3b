package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	fiberadapter "github.com/awslabs/aws-lambda-go-api-proxy/fiber"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"

	"auth-token-api/pkg/cerror"
	"auth-token-api/pkg/config"
	"auth-token-api/pkg/logger"
)

const HealthCheckPath = "/health"

type Handler interface {
	RegisterRoutes(app *fiber.App)
}

type Server interface {
	GetFiberInstance() *fiber.App
	Start() error
	Shutdown() error
	RegisterRoutes()
	LambdaProxyHandler(
		ctx context.Context,
		req events.APIGatewayProxyRequest,
	) (events.APIGatewayProxyResponse, error)
}

type server struct {
	serverPort         string
	handlers           []Handler
	fiber              *fiber.App
	fiberLambdaAdapter *fiberadapter.FiberLambda
}

func NewServer(config *config.Config, handlers []Handler) Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          cerror.Middleware,
	})
	fiberLambdaAdapter := fiberadapter.New(app)
	return &server{
		fiber:              app,
		handlers:           handlers,
		serverPort:         config.ServerPort,
		fiberLambdaAdapter: fiberLambdaAdapter,
	}
}

func (server *server) Start() error {
	shutdownChannel := make(chan os.Signal, 1)
	signal.Notify(shutdownChannel, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-shutdownChannel
		_ = server.fiber.Shutdown()
	}()

	serverAddress := fmt.Sprintf(":%s", server.serverPort)
	return server.fiber.Listen(serverAddress)
}

func (server *server) Shutdown() error {
	return server.fiber.Shutdown()
}

func (server *server) GetFiberInstance() *fiber.App {
	return server.fiber
}

// RegisterRoutes mounts the health check and every handler's routes. It must
// run after the middlewares are registered on the fiber instance.
func (server *server) RegisterRoutes() {
	server.fiber.Get(HealthCheckPath, func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).SendString("OK")
	})

	for _, handler := range server.handlers {
		handler.RegisterRoutes(server.fiber)
	}
}

// LambdaProxyHandler forwards API Gateway events to the fiber app. The Lambda
// request id is passed on as X-Request-Id so request logs can be correlated.
func (server *server) LambdaProxyHandler(
	ctx context.Context,
	req events.APIGatewayProxyRequest,
) (events.APIGatewayProxyResponse, error) {
	lambdaCtx, isOk := lambdacontext.FromContext(ctx)
	if isOk && req.Headers[logger.RequestIdHeader] == "" {
		if req.Headers == nil {
			req.Headers = map[string]string{}
		}
		req.Headers[logger.RequestIdHeader] = lambdaCtx.AwsRequestID
	}

	return server.fiberLambdaAdapter.ProxyWithContext(ctx, req)
}
