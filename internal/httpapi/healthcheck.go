package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"ecadtemp-server/internal/utils"
)

type healthchecker interface {
	handleHealthz(w http.ResponseWriter, r *http.Request)
}

type healthcheckerImpl struct {
	dataDir string
}

func NewHealthchecker(dataDir string) healthchecker {
	return &healthcheckerImpl{dataDir: dataDir}
}

func (h *healthcheckerImpl) handleHealthz(w http.ResponseWriter, r *http.Request) {
	info, err := os.Stat(h.dataDir)
	if err == nil && !info.IsDir() {
		err = fmt.Errorf("%s is not a directory", h.dataDir)
	}
	if err != nil {
		slog.Error("failed to check data directory", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "data directory unavailable")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func registerHealthcheck(mux *http.ServeMux, dataDir string) {
	healthchecker := NewHealthchecker(dataDir)
	mux.HandleFunc("GET /healthz", healthchecker.handleHealthz)
}
