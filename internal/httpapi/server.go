package httpapi

import (
	"net/http"

	"ecadtemp-server/internal/config"
	"ecadtemp-server/internal/observability"
)

func NewServer(cfg config.Config, mux *http.ServeMux, metrics *observability.Metrics) *http.Server {
	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: requestLogger(metrics, mux),
	}
}
