package server

import (
	"context"
	"io"
	"net/http"

	"github.com/Daskott/postbook/server/errs"
	"github.com/Daskott/postbook/server/models"
	"github.com/Daskott/postbook/server/store"
	"go.uber.org/zap"
)

const (
	msgPostIDPathRequired = "postId path parameter is required."
	msgEmailPathRequired  = "personal email path parameter is required."
)

// PostStore is the storage the post handlers need. *store.PostStore
// satisfies it.
type PostStore interface {
	Put(ctx context.Context, post models.Post) (*store.WriteResult, error)
	Update(ctx context.Context, postID string, update *store.Update) (*store.WriteResult, error)
	FindByEmail(ctx context.Context, email string) (models.Post, error)
}

// Response is a transport-neutral reply: a status code plus a body to be
// serialized as JSON.
type Response struct {
	StatusCode int
	Body       interface{}
}

type FailurePayload struct {
	Message    string `json:"message"`
	ErrorMsg   string `json:"errorMsg"`
	ErrorStack string `json:"errorStack"`
}

type CreatePayload struct {
	Message      string             `json:"message"`
	CreateResult *store.WriteResult `json:"createResult"`
}

type UpdatePayload struct {
	Message      string             `json:"message"`
	UpdateResult *store.WriteResult `json:"updateResult"`
}

type GetPayload struct {
	Message  string      `json:"message"`
	PostData models.Post `json:"postData"`
}

// PostHandler implements create, update and read for posts. Every failure,
// whatever its kind, becomes a 500 response carrying the error message and
// its stack.
type PostHandler struct {
	store PostStore
	logg  *zap.SugaredLogger
}

func NewPostHandler(postStore PostStore, logg *zap.SugaredLogger) *PostHandler {
	return &PostHandler{store: postStore, logg: logg}
}

func (h *PostHandler) CreatePost(ctx context.Context, body io.Reader) Response {
	result, err := h.createPost(ctx, body)
	if err != nil {
		return h.failure("Failed to create post.", err)
	}

	return Response{
		StatusCode: http.StatusOK,
		Body:       CreatePayload{Message: "Successfully created post.", CreateResult: result},
	}
}

func (h *PostHandler) UpdatePost(ctx context.Context, postID string, body io.Reader) Response {
	result, err := h.updatePost(ctx, postID, body)
	if err != nil {
		return h.failure("Failed to update post.", err)
	}

	return Response{
		StatusCode: http.StatusOK,
		Body:       UpdatePayload{Message: "Successfully updated post.", UpdateResult: result},
	}
}

func (h *PostHandler) GetPost(ctx context.Context, email string) Response {
	post, err := h.getPost(ctx, email)
	if err != nil {
		return h.failure("Failed to get post.", err)
	}

	return Response{
		StatusCode: http.StatusOK,
		Body:       GetPayload{Message: "Successfully retrieved post.", PostData: post},
	}
}

func (h *PostHandler) createPost(ctx context.Context, body io.Reader) (*store.WriteResult, error) {
	post, err := models.DecodePost(body)
	if err != nil {
		return nil, err
	}

	if err := models.Validate(post); err != nil {
		return nil, err
	}

	return h.store.Put(ctx, post)
}

// updatePost requires the body to pass full post validation, not just the
// fields being changed. The postId in the body is only checked for presence;
// the path value picks the item.
func (h *PostHandler) updatePost(ctx context.Context, postID string, body io.Reader) (*store.WriteResult, error) {
	post, err := models.DecodePost(body)
	if err != nil {
		return nil, err
	}

	if err := post.CheckUpdatable(); err != nil {
		return nil, err
	}

	if err := models.Validate(post); err != nil {
		return nil, err
	}

	if postID == "" {
		return nil, errs.NewValidationError(msgPostIDPathRequired)
	}

	update, err := store.NewUpdateBuilder().SetAll(post.UpdateFields()).Build()
	if err != nil {
		return nil, err
	}

	return h.store.Update(ctx, postID, update)
}

func (h *PostHandler) getPost(ctx context.Context, email string) (models.Post, error) {
	if email == "" {
		return nil, errs.NewValidationError(msgEmailPathRequired)
	}

	if err := models.ValidateEmail(email); err != nil {
		return nil, err
	}

	return h.store.FindByEmail(ctx, email)
}

func (h *PostHandler) failure(message string, err error) Response {
	h.logg.Errorf("%s %v", message, err)

	return Response{
		StatusCode: http.StatusInternalServerError,
		Body: FailurePayload{
			Message:    message,
			ErrorMsg:   err.Error(),
			ErrorStack: errs.Stack(err),
		},
	}
}
