package shutdown

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// WithSignals returns a context cancelled on the first SIGINT or SIGTERM,
// or on the first of sigs when given.
func WithSignals(parent context.Context, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	if len(sigs) == 0 {
		sigs = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}
	return signal.NotifyContext(parent, sigs...)
}

// Step stops one component.
type Step struct {
	Name string
	Stop func(ctx context.Context) error
}

// Run executes steps in order under one shared deadline. A failing step is
// logged and does not prevent later steps from running.
func Run(timeout time.Duration, log *slog.Logger, steps ...Step) error {
	if log == nil {
		log = slog.Default()
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var errs []error
	for _, step := range steps {
		start := time.Now()
		if err := step.Stop(ctx); err != nil {
			log.Error("shutdown step failed", slog.String("step", step.Name), slog.Any("err", err))
			errs = append(errs, fmt.Errorf("%s: %w", step.Name, err))
			continue
		}
		log.Info("shutdown step done", slog.String("step", step.Name), slog.Duration("took", time.Since(start)))
	}
	return errors.Join(errs...)
}

// Graceful adapts a blocking graceful stop that cannot take a context. When
// ctx expires first, force is called and ctx.Err is returned.
func Graceful(graceful, force func()) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		done := make(chan struct{})
		go func() {
			graceful()
			close(done)
		}()

		select {
		case <-done:
			return nil
		case <-ctx.Done():
			force()
			<-done
			return ctx.Err()
		}
	}
}
