package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"ecadtemp-server/internal/modules/temperature/repository"
	"ecadtemp-server/internal/utils"
)

// writeRepositoryError translates repository failures into HTTP responses.
// A bad id is the caller's fault, a missing series file maps to 404, and
// anything else, including a malformed data file, is a server-side failure.
func writeRepositoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrInvalidStationID):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrStationNotFound):
		utils.WriteError(w, http.StatusNotFound, err.Error())
	default:
		slog.Error("repository read failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
