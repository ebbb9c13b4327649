package handler

import (
	"net/http"

	"github.com/inkwell-dev/inkwell/internal/api"
	"github.com/inkwell-dev/inkwell/internal/domain"
	"github.com/inkwell-dev/inkwell/internal/utils"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user, err := requireUser(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	postId, err := parseIdParam(r, "postId")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var body api.CreateCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	comment, err := h.comments.Create(domain.CommentCreationData{
		PostId:     postId,
		Author:     *user,
		Content:    body.Content,
		IsMarkdown: body.IsMarkdown,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, comment)
}

func (h *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	postId, err := parseIdParam(r, "postId")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	comments, err := h.comments.List(postId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, comments)
}

func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	user, err := requireUser(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	postId, err := parseIdParam(r, "postId")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	commentId, err := parseIdParam(r, "commentId")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	var body api.UpdateCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	comment, err := h.comments.Update(postId, commentId, *user, domain.CommentUpdateData{
		Content:    body.Content,
		IsMarkdown: body.IsMarkdown,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, comment)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user, err := requireUser(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	postId, err := parseIdParam(r, "postId")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	commentId, err := parseIdParam(r, "commentId")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.comments.Delete(postId, commentId, *user); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteMessage(w, http.StatusOK, "Comment deleted successfully")
}
