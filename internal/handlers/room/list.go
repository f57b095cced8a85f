package room

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"roombook/internal/models"
	"roombook/internal/store"
	"roombook/internal/utils"
)

type ListHandler struct {
	Store store.RoomStore
}

// ServeHTTP handles GET /api/room
func (h *ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Store.ListRooms(r.Context())
	if err != nil {
		logrus.WithError(err).Error("list rooms")
		utils.Error(w, http.StatusInternalServerError, "storage error")
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	utils.JSON(w, http.StatusOK, rooms)
}
