package room

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"roombook/internal/store"
	"roombook/internal/utils"
)

type GetHandler struct {
	Store store.RoomStore
}

// ServeHTTP handles GET /api/room/{id}
func (h *GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	room, err := h.Store.GetRoom(r.Context(), id)
	if errors.Is(err, store.ErrRoomNotFound) {
		utils.Error(w, http.StatusNotFound, "room not found")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("get room")
		utils.Error(w, http.StatusInternalServerError, "storage error")
		return
	}
	utils.JSON(w, http.StatusOK, room)
}
