package handler

import (
	"net/http"

	"github.com/inkwell-dev/inkwell/internal/api"
	"github.com/inkwell-dev/inkwell/internal/domain"
	"github.com/inkwell-dev/inkwell/internal/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	user, token, err := h.auth.Register(body.Username, body.Email, body.Password)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	h.setAccessCookie(w, token)
	utils.WriteJSON(w, http.StatusCreated, authResponse(user, token))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	user, token, err := h.auth.Login(body.Email, body.Password)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	h.setAccessCookie(w, token)
	utils.WriteJSON(w, http.StatusCreated, authResponse(user, token))
}

// Logout only instructs the client to discard the token; the server keeps
// no session state and the token stays valid until expiry.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
	})

	utils.WriteMessage(w, http.StatusOK, "Logged out successfully")
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	user, err := requireUser(r)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	profile, err := h.auth.Profile(user.Id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) setAccessCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Path:     "/",
		Name:     "accessToken",
		Value:    token,
		MaxAge:   int(h.cfg.JwtTTL().Seconds()),
		HttpOnly: true,
	})
}

func authResponse(user domain.User, token string) api.AuthResponse {
	return api.AuthResponse{
		Id:       user.Id,
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	}
}
