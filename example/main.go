package main

import (
	"log/slog"
	"net/http"
	"os"

	markup "github.com/dpotapov/go-markup"
)

func LoggerMiddleware(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info("HTTP request", "method", r.Method, "url", r.URL)
		next.ServeHTTP(w, r)
	})
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	mh := &markup.Handler{
		FileSystem: os.DirFS("./example/site"),
		OnError: func(r *http.Request, err error) {
			logger.Warn("Request failed", "path", r.URL.Path, "error", err)
		},
		Logger: logger,
	}

	logger.Info("Starting HTTP server", "address", "http://localhost:8080")

	err := http.ListenAndServe(":8080", LoggerMiddleware(mh, logger))

	logger.Error("HTTP server error", "error", err)
}
