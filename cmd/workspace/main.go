package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kelsos/elevenlabs-workspace/internal/logger"
	"github.com/kelsos/elevenlabs-workspace/internal/output"
)

func main() {
	logger.Init()
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd(os.Stdout)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		output.NewPrinter(os.Stderr, output.FormatTable).Error(err)
		stop()
		logger.Close()
		os.Exit(1)
	}
}
