package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registrar is anything that can attach its routes to the router. Every
// feature handler satisfies it.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter assembles the API surface. Feature handlers carry their own
// middleware chains; only the operational endpoints live here.
func NewRouter(handlers ...Registrar) chi.Router {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	for _, h := range handlers {
		h.Register(r)
	}
	return r
}
