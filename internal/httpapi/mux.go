package httpapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewMux(dataDir string) *http.ServeMux {
	mux := http.NewServeMux()
	registerHealthcheck(mux, dataDir)
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}
