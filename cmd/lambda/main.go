package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	"github.com/saulo-duarte/habits-lambda/internal/config"
	"github.com/saulo-duarte/habits-lambda/internal/container"
)

var adapter *httpadapter.HandlerAdapter

func init() {
	app, err := container.New(context.Background(), config.Load())
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	adapter = httpadapter.New(app.Router())
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
