package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"medecho/internal/adapters/voice/sarvam"
	"medecho/internal/platform/logger"
	"medecho/internal/router"
	"medecho/internal/seed"
)

func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	voiceClient, err := sarvam.NewClient(sarvam.Config{
		BaseURL: os.Getenv("SARVAM_BASE_URL"),
		APIKey:  os.Getenv("SARVAM_API_KEY"),
	})
	if err != nil {
		log.Error("invalid sarvam config", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	kv := router.KVFromEnv(log)

	if os.Getenv("SEED") == "true" {
		if err := seed.Run(context.Background(), kv); err != nil {
			log.Warn("seed failed", map[string]any{"error": err.Error()})
		}
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: nil, // modo dev: X-Debug-User-ID
		KV:           kv,
		Voice:        voiceClient,
		Logger:       log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
