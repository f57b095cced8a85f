package room

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"roombook/internal/store"
	"roombook/internal/utils"
)

type DeleteHandler struct {
	Store store.RoomStore
}

// ServeHTTP handles DELETE /api/room/{id}
func (h *DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.Store.DeleteRoom(r.Context(), id)
	if errors.Is(err, store.ErrRoomNotFound) {
		utils.Error(w, http.StatusNotFound, "room not found")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("delete room")
		utils.Error(w, http.StatusInternalServerError, "storage error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
