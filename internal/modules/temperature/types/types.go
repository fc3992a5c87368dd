package types

// MissingValue is the sentinel the source files use for "no measurement"
// in the temperature column.
const MissingValue = -9999

// Series column names exactly as they appear in the source file header.
// The leading whitespace is part of the name and must not be trimmed;
// filtering and JSON output both depend on the literal strings.
const (
	ColStationID   = "STAID"
	ColSourceID    = " SOUID"
	ColDate        = "    DATE"
	ColTemperature = "   TG"
	ColQuality     = " Q_TG"
)

type Station struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Elevation int    `json:"elevation"`
}

// Observation is one daily row from a station series file. Temperature is
// in tenths of a degree Celsius, Date is the raw YYYYMMDD text. The JSON
// tags mirror the source column names so dumps keep the original layout.
type Observation struct {
	StationID   int    `json:"STAID"`
	SourceID    int    `json:" SOUID"`
	Date        string `json:"    DATE"`
	Temperature int    `json:"   TG"`
	Quality     int    `json:" Q_TG"`
}

// Missing reports whether the row carries the missing-value sentinel.
func (o Observation) Missing() bool {
	return o.Temperature == MissingValue
}

// Reading is the point-lookup response body. Temperature is in degrees
// Celsius and nil when no row matches the requested date.
type Reading struct {
	Station     string   `json:"station"`
	Date        string   `json:"date"`
	Temperature *float64 `json:"temperature"`
}
