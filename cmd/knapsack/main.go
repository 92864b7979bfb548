package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/GoSim-25-26J-441/knapsack-heuristics/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
