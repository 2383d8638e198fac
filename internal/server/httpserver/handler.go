package httpserver

import (
	"context"
	"net/http"

	"github.com/go-chi/render"

	"github.com/dmitrijs2005/footsteps/internal/logging"
	"github.com/dmitrijs2005/footsteps/internal/server/models"
)

// ElectricityService is what the handlers need from the service layer.
type ElectricityService interface {
	Current(ctx context.Context) (int64, error)
	Generate(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (models.Stats, error)
	Ping(ctx context.Context) error
}

type handler struct {
	svc    ElectricityService
	logger logging.Logger
}

type ElectricityResponse struct {
	Electricity int64 `json:"electricity"`
}

func (e *ElectricityResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type StatsResponse struct {
	Electricity int64   `json:"electricity"`
	KWh         float64 `json:"kwh"`
	Active      bool    `json:"active"`
}

func (s *StatsResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

type HealthResponse struct {
	Status string `json:"status"`
}

func (h *HealthResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// ErrResponse is the body of every failed API call: {"error": "..."}.
type ErrResponse struct {
	Err            error  `json:"-"`
	HTTPStatusCode int    `json:"-"`
	ErrorText      string `json:"error"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func errResponse(err error, status int) render.Renderer {
	return &ErrResponse{Err: err, HTTPStatusCode: status, ErrorText: err.Error()}
}

func (h *handler) respond(w http.ResponseWriter, r *http.Request, v render.Renderer) {
	if err := render.Render(w, r, v); err != nil {
		h.logger.Error(r.Context(), "render failed", "error", err)
	}
}

func (h *handler) getElectricity(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Current(r.Context())
	if err != nil {
		h.respond(w, r, errResponse(err, http.StatusInternalServerError))
		return
	}
	h.respond(w, r, &ElectricityResponse{Electricity: v})
}

func (h *handler) generate(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Generate(r.Context())
	if err != nil {
		h.respond(w, r, errResponse(err, http.StatusInternalServerError))
		return
	}
	h.respond(w, r, &ElectricityResponse{Electricity: v})
}

func (h *handler) getStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		h.respond(w, r, errResponse(err, http.StatusInternalServerError))
		return
	}
	h.respond(w, r, &StatsResponse{Electricity: st.Electricity, KWh: st.KWh, Active: st.Active})
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Ping(r.Context()); err != nil {
		h.respond(w, r, errResponse(err, http.StatusServiceUnavailable))
		return
	}
	h.respond(w, r, &HealthResponse{Status: "ok"})
}
