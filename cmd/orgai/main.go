package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/doeshing/orgai/internal/domain"
	"github.com/doeshing/orgai/internal/infrastructure/cli"
)

const (
	// interruptGrace lets in-flight requests and scripts observe cancellation;
	// a blocking stdin read never does.
	interruptGrace = 2 * time.Second
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	defer close(done)
	go exitAfterInterrupt(ctx, done)

	opts := cli.Options{Verbose: isVerbose()}

	root, container, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return domain.ExitFailure
	}
	defer container.Close()

	if err := root.ExecuteContext(ctx); err != nil {
		if !cli.IsRendered(err) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		return domain.ExitCode(err)
	}
	return domain.ExitOK
}

func exitAfterInterrupt(ctx context.Context, done <-chan struct{}) {
	select {
	case <-done:
		return
	case <-ctx.Done():
	}
	select {
	case <-done:
	case <-time.After(interruptGrace):
		fmt.Fprintln(os.Stderr, "\nInterrupted.")
		os.Exit(domain.ExitInterrupted)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("ORGAI_DEBUG"), "1") || strings.EqualFold(os.Getenv("ORGAI_DEBUG"), "true")
}
