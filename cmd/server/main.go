package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/baxromumarov/draft-board/internal/api"
	"github.com/baxromumarov/draft-board/internal/config"
	"github.com/baxromumarov/draft-board/internal/core"
	"github.com/baxromumarov/draft-board/internal/httpx"
	"github.com/baxromumarov/draft-board/internal/scraper"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	fetcher := httpx.NewCollyFetcher(cfg.UserAgent)
	rankings := core.NewRankingService(fetcher, scraper.Sites(), log.New(os.Stderr, "ERROR: ", 0))

	srv := api.NewServer(rankings)

	slog.Info("starting server", "port", cfg.Port, "sources", len(rankings.Sites()))
	if err := http.ListenAndServe(":"+cfg.Port, srv.Router()); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
