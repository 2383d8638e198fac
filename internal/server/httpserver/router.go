package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dmitrijs2005/footsteps/internal/common"
	"github.com/dmitrijs2005/footsteps/internal/logging"
)

// RouterOptions controls asset serving. In production every path that is not
// an API route is answered from StaticDir; in development those paths are 404
// and the front-end dev server is expected to proxy API calls.
type RouterOptions struct {
	Production bool
	StaticDir  string
}

// NewRouter builds the HTTP facade:
//
//	GET  /electricity  current counter value
//	POST /generate     increment and return the new value
//	GET  /stats        value with derived kWh and activity flag
//	GET  /healthz      storage reachability
func NewRouter(svc ElectricityService, l logging.Logger, opts RouterOptions) http.Handler {
	h := &handler{svc: svc, logger: l}

	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(accessLog(l))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", common.RequestIDHeaderName},
		ExposedHeaders: []string{common.RequestIDHeaderName},
		MaxAge:         300,
	}))

	r.Group(func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))

		r.Get("/electricity", h.getElectricity)
		r.Post("/generate", h.generate)
		r.Get("/stats", h.getStats)
		r.Get("/healthz", h.health)
	})

	if opts.Production {
		r.NotFound(spaHandler(opts.StaticDir))
	}

	return otelhttp.NewHandler(r, common.ServiceName+"-http")
}
