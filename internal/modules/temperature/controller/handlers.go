package controller

import (
	"log/slog"
	"net/http"

	"ecadtemp-server/internal/modules/temperature/types"
	"ecadtemp-server/internal/modules/temperature/views"
	"ecadtemp-server/internal/utils"
)

func (c *temperatureControllerImpl) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	data := views.HomeData{Stations: c.repository.GetStations()}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := views.RenderHome(w, &data); err != nil {
		slog.Error("home template render failed", "error", err)
		utils.WriteError(w, http.StatusInternalServerError, "failed to render page")
		return
	}
}

func (c *temperatureControllerImpl) handleTemperature(w http.ResponseWriter, r *http.Request) {
	station := r.PathValue("station")
	if station == "" {
		utils.WriteError(w, http.StatusBadRequest, "missing station id")
		return
	}
	date := r.PathValue("date")
	if date == "" {
		utils.WriteError(w, http.StatusBadRequest, "missing date")
		return
	}

	temperature, err := c.repository.GetTemperature(station, date)
	if err != nil {
		writeRepositoryError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, types.Reading{
		Station:     station,
		Date:        date,
		Temperature: temperature,
	})
}

func (c *temperatureControllerImpl) handleStationDump(w http.ResponseWriter, r *http.Request) {
	station := r.PathValue("station")
	if station == "" {
		utils.WriteError(w, http.StatusBadRequest, "missing station id")
		return
	}

	observations, err := c.repository.GetObservations(station)
	if err != nil {
		writeRepositoryError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, observations)
}

func (c *temperatureControllerImpl) handleAnnualDump(w http.ResponseWriter, r *http.Request) {
	station := r.PathValue("station")
	if station == "" {
		utils.WriteError(w, http.StatusBadRequest, "missing station id")
		return
	}
	year := r.PathValue("year")
	if year == "" {
		utils.WriteError(w, http.StatusBadRequest, "missing year")
		return
	}

	observations, err := c.repository.GetAnnualObservations(station, year)
	if err != nil {
		writeRepositoryError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, observations)
}
