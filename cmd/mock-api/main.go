// Command mock-api serves the canned development responses over HTTP, for
// running a frontend without the real backend.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/internal/config"
	"github.com/Ridwanullahi-super/chimbo-helping-hands/internal/logger"
	"github.com/Ridwanullahi-super/chimbo-helping-hands/internal/mockserver"
)

func main() {
	addr := flag.String("addr", "", "Override DONATE_MOCK_ADDR")
	flag.Parse()

	log := logger.New("mock-api")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *addr != "" {
		cfg.MockAddr = *addr
	}
	if cfg.IsProduction() {
		log.Warn().Msg("mock backend started with ENVIRONMENT=production; it only serves canned data")
	}

	router := mockserver.NewRouter(cfg.MockPrefix, nil)
	server := &http.Server{
		Addr:         cfg.MockAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.MockAddr).Str("prefix", cfg.MockPrefix).Msg("Mock API starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down mock API…")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Mock API exited")
}
