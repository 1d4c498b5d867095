package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/league-vote/auth"
	"github.com/danielhkuo/league-vote/cliparse"
	"github.com/danielhkuo/league-vote/db"
	"github.com/danielhkuo/league-vote/router"
	"github.com/danielhkuo/league-vote/store"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := db.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	st := store.New(dbConn)

	// A fresh install gets one event to vote on
	seeded, err := st.EnsureDefaultEvent(context.Background(), cfg.DefaultEvent, time.Now().Format(time.DateOnly))
	if err != nil {
		slog.Error("default event setup failed", "error", err)
		os.Exit(1)
	}
	if seeded {
		slog.Info("Default event created", "name", cfg.DefaultEvent)
	}

	gate, err := auth.NewGate(cfg)
	if err != nil {
		slog.Error("admin gate setup failed", "error", err)
		os.Exit(1)
	}
	if cfg.Dev {
		slog.Warn("Development mode: using built-in JWT secret")
	}

	// Create server
	server := http.Server{
		Handler:           router.NewRouter(st, gate, cfg),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		slog.Error("listen failed", "addr", server.Addr, "error", err)
		os.Exit(1)
	}

	slog.Info("Listening", "port", cfg.Port)
	if err := serve(&server, ln, ctrlc, 10*time.Second); err != nil {
		slog.Error("Server closed", "error", err)
		return
	}
	slog.Info("Server closed")
}

// serve runs srv on ln until stop fires, then shuts down gracefully. It
// returns only after in-flight requests have finished or the grace period
// has run out, so the caller may release shared resources afterwards.
func serve(srv *http.Server, ln net.Listener, stop <-chan os.Signal, grace time.Duration) error {
	shutdownDone := make(chan error, 1)
	go func() {
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		err := srv.Shutdown(ctx)
		if err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			srv.Close()
		}
		shutdownDone <- err
	}()

	// Serve returns as soon as Shutdown starts; wait for it to finish
	if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-shutdownDone
}
