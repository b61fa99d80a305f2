// Package handlers — InviteHandler: davet istatistikleri JSON API'si.
//
// Route'lar:
//
//	GET /api/subscribers/{subscriberId}/stats → Stats
package handlers

import (
	"net/http"

	"github.com/akinalp/devstage/pkg"
	"github.com/akinalp/devstage/services"
)

// InviteHandler, davet endpoint'lerini yöneten struct.
type InviteHandler struct {
	inviteService services.InviteService
}

// NewInviteHandler, constructor.
func NewInviteHandler(inviteService services.InviteService) *InviteHandler {
	return &InviteHandler{inviteService: inviteService}
}

// Stats godoc
// GET /api/subscribers/{subscriberId}/stats
func (h *InviteHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.inviteService.GetStats(r.Context(), r.PathValue("subscriberId"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, stats)
}
