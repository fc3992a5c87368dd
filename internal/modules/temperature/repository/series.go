package repository

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"ecadtemp-server/internal/modules/temperature/types"
)

// Lines of free-text preamble before the tabular content of a series file.
const seriesHeaderLines = 20

// seriesColumns in source order. Matched byte for byte against the file
// header, including the leading whitespace the source format puts in the
// names.
var seriesColumns = []string{
	types.ColStationID,
	types.ColSourceID,
	types.ColDate,
	types.ColTemperature,
	types.ColQuality,
}

// readObservations parses one station series file into file-ordered rows.
// Every call re-reads from disk; rows are never cached across requests.
// The file handle is released on all paths, including parse failure.
func readObservations(path string) ([]types.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: no series file %s", ErrStationNotFound, filepath.Base(path))
		}
		return nil, fmt.Errorf("open series file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("close series file", "file", filepath.Base(path), "error", err)
		}
	}()

	name := filepath.Base(path)
	br := bufio.NewReader(f)
	if err := skipLines(br, seriesHeaderLines); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFile, name, err)
	}

	cr := csv.NewReader(br)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: missing header: %v", ErrMalformedFile, name, err)
	}
	col := make(map[string]int, len(header))
	for i, colName := range header {
		col[colName] = i
	}
	for _, colName := range seriesColumns {
		if _, ok := col[colName]; !ok {
			return nil, fmt.Errorf("%w: %s: missing column %q", ErrMalformedFile, name, colName)
		}
	}

	var out []types.Observation
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFile, name, err)
		}
		o, err := parseObservation(rec, col)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedFile, name, err)
		}
		out = append(out, o)
	}
	return out, nil
}

func parseObservation(rec []string, col map[string]int) (types.Observation, error) {
	stationID, err := intField(rec, col, types.ColStationID)
	if err != nil {
		return types.Observation{}, err
	}
	sourceID, err := intField(rec, col, types.ColSourceID)
	if err != nil {
		return types.Observation{}, err
	}
	temperature, err := intField(rec, col, types.ColTemperature)
	if err != nil {
		return types.Observation{}, err
	}
	quality, err := intField(rec, col, types.ColQuality)
	if err != nil {
		return types.Observation{}, err
	}
	return types.Observation{
		StationID:   stationID,
		SourceID:    sourceID,
		Date:        strings.TrimSpace(rec[col[types.ColDate]]),
		Temperature: temperature,
		Quality:     quality,
	}, nil
}

func intField(rec []string, col map[string]int, name string) (int, error) {
	raw := strings.TrimSpace(rec[col[name]])
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("column %q: %q is not an integer", strings.TrimSpace(name), raw)
	}
	return n, nil
}

// skipLines consumes n newline-terminated lines from br.
func skipLines(br *bufio.Reader, n int) error {
	for i := 0; i < n; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			return fmt.Errorf("header line %d: %w", i+1, err)
		}
	}
	return nil
}
