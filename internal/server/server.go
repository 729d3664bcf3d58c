// Package server serves catalogue scenes as PNG images over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/gogpu/sdf"
	"github.com/gogpu/sdf/scenes"
)

// Handler renders scenes on request. It shares one Renderer across
// requests.
type Handler struct {
	renderer *sdf.Renderer
	router   *mux.Router
}

// New returns a handler rendering with r. The caller keeps ownership of r.
func New(r *sdf.Renderer) *Handler {
	h := &Handler{renderer: r, router: mux.NewRouter()}

	h.router.Use(requestID)
	h.router.Use(logRequests)

	h.router.HandleFunc("/health", h.health).Methods(http.MethodGet)
	h.router.HandleFunc("/scenes", h.list).Methods(http.MethodGet)
	h.router.HandleFunc("/scenes/{name:[a-z]+}.png", h.render).Methods(http.MethodGet)
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type sceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) list(w http.ResponseWriter, _ *http.Request) {
	names := scenes.Names()
	out := make([]sceneInfo, 0, len(names))
	for _, name := range names {
		e, _ := scenes.Lookup(name)
		out = append(out, sceneInfo{Name: e.Name, Description: e.Description})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request) {
	entry, err := scenes.Lookup(mux.Vars(r)["name"])
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}

	q := r.URL.Query()
	mode := sdf.Thermal
	if s := q.Get("mode"); s != "" {
		if mode, err = sdf.ParseMode(s); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
	}

	grid := sdf.NewGrid(entry.Bounds)
	rr := h.renderer
	if mode != rr.Mode() {
		rr = sdf.NewRenderer(sdf.WithMode(mode), sdf.WithWorkers(h.renderer.Workers()))
		defer rr.Close()
	}
	if err := rr.Render(r.Context(), grid, entry.Build()); err != nil {
		slog.Warn("render scene", "scene", entry.Name, "error", err)
		http.Error(w, "render cancelled", http.StatusServiceUnavailable)
		return
	}
	if q.Get("axis") != "0" {
		sdf.DrawAxis(grid, sdf.DefaultAxisStyle)
	}
	if q.Get("labels") == "1" {
		sdf.DrawLabels(grid, sdf.DefaultAxisStyle)
	}

	var buf bytes.Buffer
	if err := grid.EncodePNG(&buf); err != nil {
		slog.Error("encode png", "scene", entry.Name, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// requestID tags every response with a fresh X-Request-ID unless the
// client sent one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"id", w.Header().Get("X-Request-ID"),
			"duration", time.Since(start))
	})
}
