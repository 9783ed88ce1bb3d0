package main

import (
	"net/http"

	"github.com/rs/zerolog"

	"isbnapi/internal/config"
	"isbnapi/internal/httpx"
	"isbnapi/internal/issuance"
)

func newRouter(cfg config.Config, log zerolog.Logger) http.Handler {
	issuanceHandler := issuance.NewHTTPHandler(issuance.NewService(cfg.Scheme))

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.HandleFunc("POST /api/generate", issuanceHandler.Generate)
	router.HandleFunc("POST /api/validate", issuanceHandler.Validate)
	router.HandleFunc("POST /api/batch-generate", issuanceHandler.BatchGenerate)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.AllowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	)
}
