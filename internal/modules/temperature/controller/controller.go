package controller

import (
	"net/http"

	"ecadtemp-server/internal/modules/temperature/repository"
)

type TemperatureController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type temperatureControllerImpl struct {
	repository repository.TemperatureRepository
}

func NewTemperatureController(repository repository.TemperatureRepository) TemperatureController {
	return &temperatureControllerImpl{repository: repository}
}

// RegisterRoutes wires the public HTTP surface. The annual dump has its own
// three-segment pattern; a two-segment path like /api/v1/annual/2000 falls
// to the point lookup, where "annual" fails station id validation.
func (c *temperatureControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /", c.handleHome)
	mux.HandleFunc("GET /api/v1/{station}", c.handleStationDump)
	mux.HandleFunc("GET /api/v1/{station}/{date}", c.handleTemperature)
	mux.HandleFunc("GET /api/v1/annual/{station}/{year}", c.handleAnnualDump)
}
