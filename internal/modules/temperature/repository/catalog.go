package repository

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"ecadtemp-server/internal/modules/temperature/types"
)

const (
	stationsFile = "stations.txt"
	// Lines of free-text preamble before the tabular content.
	stationsHeaderLines = 17
)

// loadStations parses the station listing. Catalog column names are padded
// for alignment in the source; unlike the series files nothing downstream
// depends on the padding, so they are matched trimmed.
func loadStations(path string) ([]types.Station, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open station catalog: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("close station catalog", "error", err)
		}
	}()

	br := bufio.NewReader(f)
	if err := skipLines(br, stationsHeaderLines); err != nil {
		return nil, fmt.Errorf("%w: stations.txt: %v", ErrMalformedFile, err)
	}

	cr := csv.NewReader(br)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: stations.txt: missing header: %v", ErrMalformedFile, err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{"STAID", "STANAME", "CN", "LAT", "LON", "HGHT"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: stations.txt: missing column %q", ErrMalformedFile, name)
		}
	}

	var stations []types.Station
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: stations.txt: %v", ErrMalformedFile, err)
		}

		id, err := strconv.Atoi(strings.TrimSpace(rec[col["STAID"]]))
		if err != nil {
			return nil, fmt.Errorf("%w: stations.txt: station id %q", ErrMalformedFile, rec[col["STAID"]])
		}
		elevation, err := strconv.Atoi(strings.TrimSpace(rec[col["HGHT"]]))
		if err != nil {
			return nil, fmt.Errorf("%w: stations.txt: elevation %q for station %d", ErrMalformedFile, rec[col["HGHT"]], id)
		}

		stations = append(stations, types.Station{
			ID:        id,
			Name:      strings.TrimSpace(rec[col["STANAME"]]),
			Country:   strings.TrimSpace(rec[col["CN"]]),
			Latitude:  strings.TrimSpace(rec[col["LAT"]]),
			Longitude: strings.TrimSpace(rec[col["LON"]]),
			Elevation: elevation,
		})
	}
	return stations, nil
}
