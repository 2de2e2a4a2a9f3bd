package logger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gaze-network/auction-network/pkg/stacktrace"
)

// errorAttrReplacer renders error values as their message so every handler
// (JSON included) prints something useful instead of an empty object.
func errorAttrReplacer(_ []string, attr slog.Attr) slog.Attr {
	if attr.Value.Kind() != slog.KindAny {
		return attr
	}
	if err, ok := attr.Value.Any().(error); ok && err != nil {
		return slog.String(attr.Key, err.Error())
	}
	return attr
}

// middlewareErrorStackTrace adds the verbose error and its stack trace to records carrying an error.
func middlewareErrorStackTrace() middleware {
	return func(next handleFunc) handleFunc {
		return func(ctx context.Context, rec slog.Record) error {
			var extra []slog.Attr
			rec.Attrs(func(attr slog.Attr) bool {
				if attr.Key != ErrorKey {
					return true
				}
				if err, ok := attr.Value.Any().(error); ok && err != nil {
					extra = append(extra, slog.String(ErrorVerboseKey, fmt.Sprintf("%+v", err)))
					if st, ok := stacktrace.ParseErrStackTrace(err); ok {
						extra = append(extra, slog.Any(StackTraceKey, st.Lines()))
					}
				}
				return false
			})
			rec.AddAttrs(extra...)
			return next(ctx, rec)
		}
	}
}
