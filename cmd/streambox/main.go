package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThilinikaEvanthi1221/StreamBox/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	dataDir := flag.String("data-dir", "", "override local data directory (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := app.Run(ctx, app.Options{ConfigPath: *configPath, DataDir: *dataDir}); err != nil {
		fmt.Fprintf(os.Stderr, "streambox: %v\n", err)
		return 1
	}
	return 0
}
