// Package httpapi serves the operational HTTP surface of the daemon:
// health, Prometheus metrics and read-only debug views.
package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/dense-identity/domainselection/internal/imsstate"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const looperTimeout = 2 * time.Second

// Service is the part of the domain selection service the handlers read.
// Everything but Do must be called through Do.
type Service interface {
	Do(ctx context.Context, fn func()) error
	ImsSnapshot(slotID int) (imsstate.Snapshot, bool)
	ActiveSelectors() int
}

// Sessions reports the open selection streams.
type Sessions interface {
	Sessions() int
}

type Handler struct {
	svc      Service
	sessions Sessions
	gatherer prometheus.Gatherer
	logger   *log.Logger
}

func New(svc Service, sessions Sessions, gatherer prometheus.Gatherer, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{svc: svc, sessions: sessions, gatherer: gatherer, logger: logger}
}

// Routes returns a router with every endpoint mounted.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	h.Register(r)
	return r
}

// Register mounts the endpoints on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/healthz", h.HandleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	r.Get("/debug/selectors", h.HandleSelectors)
	r.Get("/debug/ims/{slot}", h.HandleImsState)
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Printf("[httpapi] encode response: %v", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, code int, msg string) {
	h.writeJSON(w, code, map[string]string{"error": msg})
}

// onLooper runs fn on the service looper with a bounded wait.
func (h *Handler) onLooper(r *http.Request, fn func()) error {
	ctx, cancel := context.WithTimeout(r.Context(), looperTimeout)
	defer cancel()
	return h.svc.Do(ctx, fn)
}

// HandleHealth reports ok while the service looper is answering.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.onLooper(r, func() {}); err != nil {
		h.logger.Printf("[httpapi] health check: %v", err)
		h.writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) HandleSelectors(w http.ResponseWriter, r *http.Request) {
	var active int
	if err := h.onLooper(r, func() { active = h.svc.ActiveSelectors() }); err != nil {
		h.writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	resp := map[string]int{"active_selectors": active}
	if h.sessions != nil {
		resp["sessions"] = h.sessions.Sessions()
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// HandleImsState returns the IMS tracker snapshot of a slot.
func (h *Handler) HandleImsState(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.Atoi(chi.URLParam(r, "slot"))
	if err != nil || slotID < 0 {
		h.writeError(w, http.StatusBadRequest, "invalid slot")
		return
	}
	var (
		snap imsstate.Snapshot
		ok   bool
	)
	if err := h.onLooper(r, func() { snap, ok = h.svc.ImsSnapshot(slotID) }); err != nil {
		h.writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	if !ok {
		h.writeError(w, http.StatusNotFound, "no tracker for slot")
		return
	}
	h.writeJSON(w, http.StatusOK, snap)
}
