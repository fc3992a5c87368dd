package temperature

import (
	"log/slog"
	"net/http"

	"ecadtemp-server/internal/modules/temperature/controller"
	"ecadtemp-server/internal/modules/temperature/repository"
	"ecadtemp-server/internal/observability"
)

func RegisterFeature(mux *http.ServeMux, dataDir string, metrics *observability.Metrics) error {
	temperatureRepository, err := repository.NewRepository(dataDir)
	if err != nil {
		return err
	}
	stations := temperatureRepository.GetStations()
	slog.Info("station catalog loaded", "stations", len(stations))
	metrics.StationsLoaded.Set(float64(len(stations)))

	temperatureController := controller.NewTemperatureController(temperatureRepository)
	temperatureController.RegisterRoutes(mux)
	return nil
}
