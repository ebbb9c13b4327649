package handler

import (
	"net/http"

	"github.com/inkwell-dev/inkwell/internal/config"
	"github.com/inkwell-dev/inkwell/internal/service"
	"github.com/inkwell-dev/inkwell/internal/utils"
)

type Handler struct {
	auth     service.AuthService
	posts    service.PostService
	comments service.CommentService
	cfg      *config.Config
}

func New(auth service.AuthService, posts service.PostService, comments service.CommentService, cfg *config.Config) *Handler {
	return &Handler{auth: auth, posts: posts, comments: comments, cfg: cfg}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
