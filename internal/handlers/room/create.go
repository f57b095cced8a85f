package room

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"roombook/internal/store"
	"roombook/internal/utils"
	"roombook/internal/validate"
)

type CreateHandler struct {
	Store store.RoomStore
}

type CreateRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Occupied bool   `json:"occupied"`
}

// ServeHTTP handles POST /api/room
func (h *CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validate.RoomName(req.Name); err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Capacity(req.Capacity); err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	room, err := h.Store.CreateRoom(r.Context(), req.Name, req.Capacity, req.Occupied)
	if err != nil {
		logrus.WithError(err).Error("create room")
		utils.Error(w, http.StatusInternalServerError, "storage error")
		return
	}
	utils.JSON(w, http.StatusCreated, room)
}
