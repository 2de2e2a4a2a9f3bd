package logger

import (
	"io"
	"log/slog"

	"github.com/gaze-network/auction-network/pkg/logger/slogx"
)

// GCP Cloud Logging special fields, see https://cloud.google.com/logging/docs/structured-logging
const (
	gcpMessageKey   = "message"
	gcpSeverityKey  = "severity"
	gcpSourceKey    = "logging.googleapis.com/sourceLocation"
	gcpOperationKey = "logging.googleapis.com/operation"

	// gcpOperationProducer names this service in LogEntry.operation.
	gcpOperationProducer = "auction-network"
)

// NewGCPHandler writes JSON lines that Cloud Logging parses into LogEntry fields.
// Lines sharing a request id are grouped as one operation.
func NewGCPHandler(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     opts.Level,
		ReplaceAttr: attrReplacerChain(
			GCPAttrReplacer,
			opts.ReplaceAttr,
		),
	})
}

// GCPAttrReplacer replaces the default attribute keys with the GCP logging attribute keys.
func GCPAttrReplacer(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return attr
	}
	switch attr.Key {
	case MessageKey:
		attr.Key = gcpMessageKey
	case SourceKey:
		attr.Key = gcpSourceKey
	case LevelKey:
		attr.Key = gcpSeverityKey
		if lvl, ok := attr.Value.Any().(slog.Level); ok {
			attr.Value = slog.StringValue(gcpSeverityMapping(lvl))
		}
	case slogx.RequestIDKey:
		attr = slog.Group(gcpOperationKey,
			slog.String("id", attr.Value.String()),
			slog.String("producer", gcpOperationProducer),
		)
	}
	return attr
}

// https://cloud.google.com/logging/docs/reference/v2/rest/v2/LogEntry#logseverity
func gcpSeverityMapping(lvl slog.Level) string {
	switch {
	case lvl < slog.LevelInfo:
		return "DEBUG"
	case lvl < slog.LevelWarn:
		return "INFO"
	case lvl < slog.LevelError:
		return "WARNING"
	case lvl < LevelCritical:
		return "ERROR"
	case lvl < LevelPanic:
		return "CRITICAL"
	case lvl < LevelFatal:
		return "ALERT"
	default:
		return "EMERGENCY"
	}
}
