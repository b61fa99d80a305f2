package handlers

import (
	"net/http"

	"github.com/akinalp/devstage/pkg"
)

// Health godoc
// GET /api/health
//
// Liveness kontrolü. Upstream'e gitmez; sadece process'in ayakta olduğunu söyler.
func Health(w http.ResponseWriter, r *http.Request) {
	pkg.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
