package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"roombook/internal/store"
	"roombook/internal/utils"
)

type LoginHandler struct {
	Store store.UserStore
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeHTTP handles POST /api/auth/login. Any credential mismatch gets the
// same 401 body so callers cannot probe for registered emails.
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.Store.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, store.ErrInvalidCredentials) {
		utils.Error(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("login user")
		utils.Error(w, http.StatusInternalServerError, "storage error")
		return
	}
	utils.JSON(w, http.StatusOK, user)
}
