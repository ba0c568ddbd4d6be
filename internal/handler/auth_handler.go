package handlers

import (
	"encoding/json"
	"net/http"

	"miblog/internal/service"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse - ответ регистрации и логина. userId в строковом виде
// "user-<n>" - это и есть идентификатор, который клиент предъявляет дальше.
type AuthResponse struct {
	UserID      string `json:"userId"`
	Username    string `json:"username"`
	AccessToken string `json:"accessToken"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Имя пользователя и пароль обязательны", http.StatusBadRequest)
		return
	}

	user, accessToken, err := h.AuthService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	response := AuthResponse{
		UserID:      service.FormatIdentity(user.ID),
		Username:    user.Username,
		AccessToken: accessToken,
	}

	WriteSuccess(w, response, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Имя пользователя и пароль обязательны", http.StatusBadRequest)
		return
	}

	user, accessToken, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	response := AuthResponse{
		UserID:      service.FormatIdentity(user.ID),
		Username:    user.Username,
		AccessToken: accessToken,
	}

	WriteSuccess(w, response, http.StatusOK)
}
