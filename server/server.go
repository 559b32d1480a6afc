package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Daskott/postbook/server/logger"
	"github.com/Daskott/postbook/server/store"
	"github.com/Daskott/postbook/shared"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gorilla/mux"
	"github.com/spf13/viper"
)

const DEFAULT_PORT = 3000

var logg = logger.NewLogger(false)

// Start serves the post handlers over HTTP until SIGINT or SIGTERM.
func Start(config *viper.Viper, devMode bool) {
	logg = logger.NewLogger(devMode)

	serverConfig, err := loadServerConfig(config)
	fatalOnError(err)

	postHandler, err := newPostHandler(context.Background(), serverConfig.DynamoDB)
	fatalOnError(err)

	port := serverConfig.Listener.Port
	if port == 0 {
		port = DEFAULT_PORT
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%v", port),
		Handler: NewRouter(postHandler),
	}

	go serve(server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	cleanup(server)
}

// StartLambda hands the post handlers to the AWS Lambda runtime. It does not
// return.
func StartLambda(config *viper.Viper) {
	serverConfig, err := loadServerConfig(config)
	fatalOnError(err)

	postHandler, err := newPostHandler(context.Background(), serverConfig.DynamoDB)
	fatalOnError(err)

	lambda.Start(NewLambdaHandler(postHandler).Handle)
}

func NewRouter(postHandler *PostHandler) *mux.Router {
	router := mux.NewRouter()
	router.Use(requestIDMiddleware, loggingMiddleware, jsonContentTypeMiddleware)

	router.HandleFunc("/health", health).Methods(http.MethodGet)

	// Empty path values are let through so the handlers report them.
	router.HandleFunc("/posts", postHandler.createPostHTTP).Methods(http.MethodPost)
	router.HandleFunc("/posts/{postId:[^/]*}", postHandler.updatePostHTTP).Methods(http.MethodPut)
	router.HandleFunc("/posts/{email:[^/]*}", postHandler.getPostHTTP).Methods(http.MethodGet)

	return router
}

func newPostHandler(ctx context.Context, cfg shared.DynamoDBConfig) (*PostHandler, error) {
	client, err := store.NewDynamoClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	postStore, err := store.NewPostStore(client, cfg.TableName, cfg.EmailIndex)
	if err != nil {
		return nil, err
	}

	return NewPostHandler(postStore, logg), nil
}
