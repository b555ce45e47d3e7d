package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/pointsup/cliparse"
	"github.com/danielhkuo/pointsup/middleware"
	"github.com/danielhkuo/pointsup/router"
	"github.com/danielhkuo/pointsup/scale"
	"github.com/danielhkuo/pointsup/store"
)

func main() {
	// Load .env if present; real env vars win
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Build the scale registry and verify the configured default
	registry := scale.BuiltIn()
	if _, ok := registry.Lookup(cfg.DefaultScale); !ok {
		slog.Error("unknown default scale", "scale", cfg.DefaultScale)
		os.Exit(1)
	}

	// The room store is the only process-wide state
	roomStore := store.New(registry)

	// Reclaim idle rooms in the background
	if cfg.RoomTTL > 0 {
		go func() {
			ticker := time.NewTicker(cfg.SweepInterval)
			defer ticker.Stop()
			for range ticker.C {
				if removed := roomStore.Sweep(time.Now(), cfg.RoomTTL); removed > 0 {
					slog.Info("idle rooms reclaimed", "count", removed, "remaining", roomStore.Count())
				}
			}
		}()
	}

	// Create router
	mux := router.NewRouter(roomStore, registry, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "default_scale", cfg.DefaultScale, "room_ttl", cfg.RoomTTL)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
