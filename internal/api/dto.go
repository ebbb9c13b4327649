// Package api holds the request and response DTOs shared by handlers and
// their tests.
package api

import "github.com/inkwell-dev/inkwell/internal/domain"

// Request DTOs

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// UpdatePostRequest fields are optional on purpose: absent or empty values
// leave the stored field unchanged.
type UpdatePostRequest struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

type CreateCommentRequest struct {
	Content    string `json:"content" validate:"required"`
	IsMarkdown bool   `json:"isMarkdown,omitempty"`
}

type UpdateCommentRequest struct {
	Content    string `json:"content" validate:"required"`
	IsMarkdown *bool  `json:"isMarkdown,omitempty"`
}

// Response DTOs

// AuthResponse is returned by register and login; the token is also set as
// a cookie for browser clients.
type AuthResponse struct {
	Id       domain.UserId `json:"id"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
	Token    string        `json:"token"`
}
