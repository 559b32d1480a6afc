package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Daskott/postbook/server/errs"
	"github.com/aws/aws-lambda-go/events"
)

// LambdaHandler adapts API Gateway proxy events to a PostHandler. The route is
// picked from the HTTP method: POST creates, PUT updates by the postId path
// parameter, GET reads by the email path parameter.
type LambdaHandler struct {
	posts *PostHandler
}

func NewLambdaHandler(posts *PostHandler) *LambdaHandler {
	return &LambdaHandler{posts: posts}
}

func (h *LambdaHandler) Handle(ctx context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	response := h.dispatch(ctx, request)

	body, err := json.Marshal(response.Body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, fmt.Errorf("LambdaHandler: %v", err)
	}

	return events.APIGatewayProxyResponse{
		StatusCode: response.StatusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}, nil
}

func (h *LambdaHandler) dispatch(ctx context.Context, request events.APIGatewayProxyRequest) Response {
	switch request.HTTPMethod {
	case http.MethodPost:
		return h.posts.CreatePost(ctx, requestBody(request))
	case http.MethodPut:
		return h.posts.UpdatePost(ctx, request.PathParameters["postId"], requestBody(request))
	case http.MethodGet:
		return h.posts.GetPost(ctx, request.PathParameters["email"])
	}

	return h.posts.failure(
		"Failed to handle request.",
		errs.NewValidationError(fmt.Sprintf("Unsupported method %s.", request.HTTPMethod)),
	)
}

func requestBody(request events.APIGatewayProxyRequest) io.Reader {
	body := strings.NewReader(request.Body)
	if request.IsBase64Encoded {
		return base64.NewDecoder(base64.StdEncoding, body)
	}
	return body
}
