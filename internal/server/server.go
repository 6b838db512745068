package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/nwbound/ferrydeck/internal/ferry"
	"github.com/nwbound/ferrydeck/internal/weather"
)

// Server hosts the JSON API: ferry conditions, maritime weather and a
// health probe. CORS is wide open; the payloads are public data.
type Server struct {
	engine   *ferry.Engine
	observer weather.Observer
	lat, lon float64
	logger   *logrus.Logger
	http     *http.Server
}

func New(port int, engine *ferry.Engine, observer weather.Observer, lat, lon float64, logger *logrus.Logger) *Server {
	s := &Server{
		engine:   engine,
		observer: observer,
		lat:      lat,
		lon:      lon,
		logger:   logger,
	}
	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Router builds the chi handler. Exposed separately so tests can drive it
// with httptest.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/api/ferries", s.handleFerries)
	r.Get("/api/weather", s.handleWeather)
	r.Get("/api/health", s.handleHealth)
	return r
}

func (s *Server) Start() error {
	s.logger.WithField("addr", s.http.Addr).Info("server listening")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// handleFerries answers with the full conditions payload. The contract is
// always-200: any unexpected failure degrades to the static fallback payload
// with debug.error set. The one 400 is an explicitly requested direction the
// route does not define.
func (s *Server) handleFerries(w http.ResponseWriter, r *http.Request) {
	route := r.URL.Query().Get("route")
	direction := r.URL.Query().Get("direction")

	defer func() {
		if rec := recover(); rec != nil {
			s.logger.WithField("panic", rec).Error("ferry payload assembly panicked")
			writeJSON(w, http.StatusOK, s.engine.ErrorFallback(route, direction, fmt.Sprintf("internal error: %v", rec)))
		}
	}()

	payload, err := s.engine.Report(r.Context(), route, direction)
	if err != nil {
		var dirErr *ferry.InvalidDirectionError
		if errors.As(err, &dirErr) {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": dirErr.Error(),
			})
			return
		}
		s.logger.WithField("error", err).Error("ferry payload assembly failed")
		writeJSON(w, http.StatusOK, s.engine.ErrorFallback(route, direction, err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	report, err := weather.Current(ctx, s.observer, s.lat, s.lon)
	if err != nil {
		s.logger.WithField("error", err).Error("weather fetch failed")
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Unable to fetch weather data",
			"message": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"routes":    len(s.engine.Store().ListRoutes()),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
