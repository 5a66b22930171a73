// Package main is the entry point for the llamaup CLI.
//
// llamaup provisions a single GPU server on Hetzner Cloud running Ollama
// and Open WebUI, follows the installation from the outside, and verifies
// the instance actually serves the configured model before declaring it
// ready.
//
// Commands: init, up, status, destroy.
//
// For detailed usage information, run:
//
//	llamaup --help
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/charmbracelet/huh"

	"github.com/llamaup/llamaup/cmd/llamaup/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Track which signal aborted the run so the exit code reflects it.
	var received atomic.Int32
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		received.Store(int32(sig.(syscall.Signal)))
		cancel()
		// A second signal aborts immediately, skipping cleanup prompts.
		<-sigCh
		os.Exit(exitCode(syscall.Signal(received.Load())))
	}()

	err := commands.Root().ExecuteContext(ctx)
	switch {
	case err == nil:
		return
	case errors.Is(err, huh.ErrUserAborted):
		// Backing out of a prompt is a decision, not a failure.
		return
	case errors.Is(err, context.Canceled) && received.Load() != 0:
		fmt.Fprintln(os.Stderr, "aborted")
		os.Exit(exitCode(syscall.Signal(received.Load())))
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// exitCode maps a terminating signal to the conventional 128+N exit code.
func exitCode(sig syscall.Signal) int {
	return 128 + int(sig)
}
