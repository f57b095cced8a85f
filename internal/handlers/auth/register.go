package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"roombook/internal/store"
	"roombook/internal/utils"
	"roombook/internal/validate"
)

type RegisterHandler struct {
	Store store.UserStore
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeHTTP handles POST /api/auth/register
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}
	if err := validate.Email(req.Email); err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Store.Register(r.Context(), req.Email, req.Password)
	if errors.Is(err, store.ErrEmailExists) {
		utils.Error(w, http.StatusConflict, "user with this email already exists")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("register user")
		utils.Error(w, http.StatusInternalServerError, "storage error")
		return
	}
	utils.JSON(w, http.StatusCreated, user)
}
