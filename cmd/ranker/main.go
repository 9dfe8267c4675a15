package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/baxromumarov/draft-board/internal/core"
	"github.com/baxromumarov/draft-board/internal/httpx"
	"github.com/baxromumarov/draft-board/internal/scraper"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errLog := log.New(os.Stderr, "ERROR: ", 0)
	svc := core.NewRankingService(httpx.NewCollyFetcher(""), scraper.Sites(), errLog)

	rankings, err := svc.Rankings(ctx)
	if err != nil {
		errLog.Printf("ranking run aborted: %v", err)
		return 1
	}

	out, err := json.Marshal(rankings)
	if err != nil {
		errLog.Printf("encode rankings: %v", err)
		return 1
	}
	fmt.Fprintln(os.Stdout, string(out))
	return 0
}
