// Package automaxprocs sizes GOMAXPROCS to the container CPU quota and logs the result.
package automaxprocs

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/pkg/logger"
	"github.com/gaze-network/auction-network/pkg/logger/slogx"
	"go.uber.org/automaxprocs/maxprocs"
)

// Init sets GOMAXPROCS from the Linux CPU quota. A GOMAXPROCS environment variable
// wins, and non-Linux hosts keep the runtime default. The returned func restores the
// previous value.
func Init(ctx context.Context) (undo func(), err error) {
	prev := runtime.GOMAXPROCS(0)
	ctx = logger.WithContext(ctx,
		slogx.String("package", "automaxprocs"),
		slogx.Int("prev_maxprocs", prev),
	)

	logf := func(format string, v ...any) {
		logger.LogAttrs(ctx, slog.LevelInfo, fmt.Sprintf(format, v...), slogx.Int("maxprocs", runtime.GOMAXPROCS(0)))
	}

	undo, err = maxprocs.Set(maxprocs.Logger(logf), maxprocs.Min(1))
	if err != nil {
		return func() {}, errors.WithStack(err)
	}
	return undo, nil
}
