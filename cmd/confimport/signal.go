package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// signalContext creates a context that gets cancelled when a SIGINT or SIGTERM
// signal is received.
//
// Operations already sent to the backend complete; remaining operations are
// not applied. After the first signal, signals are no longer captured.
func signalContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sig)

		select {
		case s := <-sig:
			fmt.Fprintf(os.Stderr, "\nReceived %s signal, cancelling..\n", s)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
