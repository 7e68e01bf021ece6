package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/insketch/insketch/internal/config"
	"github.com/insketch/insketch/internal/export"
	"github.com/insketch/insketch/internal/geom"
	"github.com/insketch/insketch/internal/live"
	mw "github.com/insketch/insketch/internal/middleware"
	"github.com/insketch/insketch/internal/session"
	"github.com/insketch/insketch/internal/sketch"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	canvas := geom.Rect{Width: cfg.CanvasWidth, Height: cfg.CanvasHeight}
	pen := sketch.Style{Stroke: cfg.StrokeColor, StrokeWidth: cfg.StrokeWidth}

	sessionService := session.NewService()
	sessionHandler := session.NewHandler(sessionService)
	exportHandler := export.NewHandler(sessionService, canvas)
	liveHandler := live.NewHandler(sessionService, cfg.Origins(), pen)

	r := mux.NewRouter()

	// Global middleware
	r.Use(mw.Recovery)
	r.Use(mw.Logger)
	r.Use(mw.CORS(cfg.Origins()))

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Session API
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/sessions/{sessionId}", sessionHandler.Get).Methods("GET")
	api.HandleFunc("/sessions/{sessionId}", sessionHandler.Delete).Methods("DELETE", "OPTIONS")
	api.HandleFunc("/sessions/{sessionId}/export", exportHandler.Export).Methods("GET")

	// WebSocket endpoint
	r.HandleFunc("/ws/sessions/{sessionId}", liveHandler.Serve)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server starting", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
