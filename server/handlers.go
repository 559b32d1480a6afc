package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

type healthPayload struct {
	Status string `json:"status"`
}

func (h *PostHandler) createPostHTTP(rw http.ResponseWriter, r *http.Request) {
	writeResponse(rw, h.CreatePost(r.Context(), r.Body))
}

func (h *PostHandler) updatePostHTTP(rw http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	writeResponse(rw, h.UpdatePost(r.Context(), vars["postId"], r.Body))
}

func (h *PostHandler) getPostHTTP(rw http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	writeResponse(rw, h.GetPost(r.Context(), vars["email"]))
}

func health(rw http.ResponseWriter, r *http.Request) {
	writeResponse(rw, Response{StatusCode: http.StatusOK, Body: healthPayload{Status: "ok"}})
}
