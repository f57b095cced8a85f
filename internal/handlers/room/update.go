package room

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"roombook/internal/store"
	"roombook/internal/utils"
)

type UpdateHandler struct {
	Store store.RoomStore
}

type UpdateRequest struct {
	Occupied *bool `json:"occupied"`
}

// ServeHTTP handles PUT /api/room/{id}. Only the occupied flag can be
// changed on an existing room.
func (h *UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Occupied == nil {
		utils.Error(w, http.StatusBadRequest, "occupied is required")
		return
	}

	room, err := h.Store.UpdateRoom(r.Context(), id, store.RoomUpdate{Occupied: req.Occupied})
	if errors.Is(err, store.ErrRoomNotFound) {
		utils.Error(w, http.StatusNotFound, "room not found")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("update room")
		utils.Error(w, http.StatusInternalServerError, "storage error")
		return
	}
	utils.JSON(w, http.StatusOK, room)
}
