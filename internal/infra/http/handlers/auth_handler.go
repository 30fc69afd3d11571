package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/rajudas/field-sales-api/internal/auth"
	"github.com/rajudas/field-sales-api/internal/entity"
	"github.com/rajudas/field-sales-api/internal/usecase"
)

type AuthHandler struct {
	LoginUC   *usecase.LoginUseCase
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthHandler(loginUC *usecase.LoginUseCase, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		LoginUC:   loginUC,
		JWTSecret: jwtSecret,
		TokenTTL:  tokenTTL,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON"})
		return
	}

	user, err := h.LoginUC.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		// One message for wrong password and unknown user alike.
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "Invalid username or password"})
			return
		}
		log.Printf("[Auth] login failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "login unavailable, try again"})
		return
	}

	token, err := auth.GenerateToken(user, h.JWTSecret, h.TokenTTL)
	if err != nil {
		log.Printf("[Auth] token generation failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "login unavailable, try again"})
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}
