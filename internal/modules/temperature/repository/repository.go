package repository

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"ecadtemp-server/internal/modules/temperature/types"
)

var (
	// ErrInvalidStationID marks station identifiers that do not parse as a
	// non-negative integer.
	ErrInvalidStationID = errors.New("invalid station id")
	// ErrStationNotFound marks well-formed ids with no series file on disk.
	// Distinct from a station whose file exists but yields zero rows.
	ErrStationNotFound = errors.New("station not found")
	// ErrMalformedFile marks data files that do not match the expected layout.
	ErrMalformedFile = errors.New("malformed data file")
)

type TemperatureRepository interface {
	GetStations() []types.Station
	GetTemperature(stationID string, date string) (*float64, error)
	GetObservations(stationID string) ([]types.Observation, error)
	GetAnnualObservations(stationID string, year string) ([]types.Observation, error)
}

type repositoryImpl struct {
	dataDir  string
	stations []types.Station
}

// NewRepository loads the station catalog from dataDir and returns a
// repository reading series files from the same directory. A missing or
// malformed catalog is a startup failure, not a per-request condition.
func NewRepository(dataDir string) (TemperatureRepository, error) {
	stations, err := loadStations(filepath.Join(dataDir, stationsFile))
	if err != nil {
		return nil, err
	}
	return &repositoryImpl{dataDir: dataDir, stations: stations}, nil
}

// GetStations returns the catalog loaded at startup. The slice is never
// mutated after NewRepository returns.
func (r *repositoryImpl) GetStations() []types.Station {
	return r.stations
}

// GetTemperature returns the temperature in degrees Celsius for the station
// on the given YYYY-MM-DD date, or nil when no valid row matches. Rows with
// the missing-value sentinel never match. An unparseable date is a normal
// nil result, not an error. Duplicate dates resolve to the first row in
// file order.
func (r *repositoryImpl) GetTemperature(stationID string, date string) (*float64, error) {
	path, err := r.seriesPath(stationID)
	if err != nil {
		return nil, err
	}
	observations, err := readObservations(path)
	if err != nil {
		return nil, err
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, nil
	}
	want := day.Format("20060102")

	for _, o := range observations {
		if o.Missing() {
			continue
		}
		if o.Date == want {
			temperature := float64(o.Temperature) / 10
			return &temperature, nil
		}
	}
	return nil, nil
}

// GetObservations returns every row for the station with the missing-value
// sentinel filtered out, in file order. The result is empty, not nil, when
// no valid rows exist.
func (r *repositoryImpl) GetObservations(stationID string) ([]types.Observation, error) {
	path, err := r.seriesPath(stationID)
	if err != nil {
		return nil, err
	}
	observations, err := readObservations(path)
	if err != nil {
		return nil, err
	}

	out := make([]types.Observation, 0, len(observations))
	for _, o := range observations {
		if o.Missing() {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

// GetAnnualObservations returns every row whose textual date starts with
// year, in file order. Sentinel rows are kept so callers can tell "no
// reading that day" from "day not in file". The prefix match is deliberate;
// a 3-digit year like "199" selects a whole decade.
func (r *repositoryImpl) GetAnnualObservations(stationID string, year string) ([]types.Observation, error) {
	path, err := r.seriesPath(stationID)
	if err != nil {
		return nil, err
	}
	observations, err := readObservations(path)
	if err != nil {
		return nil, err
	}

	out := make([]types.Observation, 0, len(observations))
	for _, o := range observations {
		if strings.HasPrefix(o.Date, year) {
			out = append(out, o)
		}
	}
	return out, nil
}

// seriesPath formats the canonical series file path for a station id. Ids
// arrive as path segments without leading zeros; the on-disk name is
// zero-padded to six digits.
func (r *repositoryImpl) seriesPath(stationID string) (string, error) {
	id, err := strconv.Atoi(stationID)
	if err != nil || id < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidStationID, stationID)
	}
	return filepath.Join(r.dataDir, fmt.Sprintf("TG_STAID%06d.txt", id)), nil
}
