package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"parking-facility/internal/parking"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	httpServer *http.Server
	handler    *Handler
}

func NewServer(port string, facility *parking.InstrumentedFacility) *Server {
	handler := NewHandler(facility)

	r := chi.NewRouter()

	r.Use(RecoveryMiddleware)
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(TracingMiddleware)
	r.Use(CORSMiddleware)

	r.Get("/health", handler.HealthCheck)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api/facility", func(r chi.Router) {
		r.Post("/owners", handler.RegisterOwner)
		r.Get("/owners", handler.ListOwners)
		r.Get("/owners/{id}", handler.GetOwner)
		r.Post("/owners/{id}/hours", handler.AccumulateHours)
		r.Post("/vehicles", handler.RegisterVehicle)
		r.Get("/vehicles", handler.ListVehicles)
		r.Get("/vehicles/{plate}", handler.GetVehicle)
		r.Post("/services", handler.RegisterService)
		r.Get("/services", handler.ListServices)
		r.Get("/stats", handler.GetStats)
	})

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		handler:    handler,
	}
}

func (s *Server) Start() error {
	log.Printf("Starting HTTP server on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down HTTP server...")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) GetAddress() string {
	return fmt.Sprintf("http://localhost%s", s.httpServer.Addr)
}
