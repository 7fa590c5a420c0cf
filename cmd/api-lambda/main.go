package main

import (
	"context"
	"log"

	_ "github.com/handyline/handyline-api/docs"

	"github.com/handyline/handyline-api/apps/api/server"
	"github.com/handyline/handyline-api/libs/go/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
)

var (
	ginLambda *ginadapter.GinLambda
	debugDump bool
)

func init() {
	ctx := context.Background()
	cfg, err := server.LoadConfig(ctx)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v\n", err)
	}

	logger.InitLogger(cfg.Stage)
	debugDump = cfg.IsDevelopment()

	srv, err := server.New(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}

	ginLambda = ginadapter.New(srv.Handler())
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if debugDump {
		logger.Debug("Received Lambda request",
			zap.String("path", req.Path),
			zap.String("request", spew.Sdump(req)),
		)
	}
	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer func() { _ = logger.Sync() }()
	lambda.Start(Handler)
}
