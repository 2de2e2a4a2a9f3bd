package workers

import (
	"context"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// Worker is a long-running background process owned by a module.
// Run blocks until ctx is done or the worker fails.
type Worker interface {
	Run(ctx context.Context) error
}

// Func adapts a plain function to Worker.
type Func func(ctx context.Context) error

func (f Func) Run(ctx context.Context) error {
	return f(ctx)
}

// Group runs every worker concurrently. The first failure cancels the others.
type Group []Worker

func (g Group) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	for _, w := range g {
		w := w
		eg.Go(func() error {
			return errors.WithStack(w.Run(ctx))
		})
	}
	return errors.WithStack(eg.Wait())
}

// WithCleanup returns a worker that runs cleanup once w returns.
func WithCleanup(w Worker, cleanup func(ctx context.Context) error) Worker {
	return Func(func(ctx context.Context) error {
		runErr := w.Run(ctx)
		// ctx is usually done by now
		if err := cleanup(context.WithoutCancel(ctx)); err != nil {
			return errors.Join(runErr, errors.Wrap(err, "cleanup failed"))
		}
		return runErr
	})
}
