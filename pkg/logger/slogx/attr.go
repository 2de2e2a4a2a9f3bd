// Package slogx provides slog attribute constructors with the service's canonical keys.
package slogx

import (
	"fmt"
	"log/slog"
	"time"
)

// Error returns an attr for err under [ErrorKey]. A nil error yields the empty attr,
// which handlers drop.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any(ErrorKey, err)
}

func Package(name string) slog.Attr {
	return slog.String(PackageKey, name)
}

func EventID(id string) slog.Attr {
	return slog.String(EventIDKey, id)
}

func ParticipantID(id string) slog.Attr {
	return slog.String(ParticipantIDKey, id)
}

func LotNumber(lot string) slog.Attr {
	return slog.String(LotNumberKey, lot)
}

func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

// Stringer returns an attr for value.String(). Money amounts log through this.
func Stringer(key string, value fmt.Stringer) slog.Attr {
	return slog.String(key, value.String())
}

func Int(key string, value int) slog.Attr {
	return slog.Int64(key, int64(value))
}

func Int64(key string, value int64) slog.Attr {
	return slog.Int64(key, value)
}

func Duration(key string, v time.Duration) slog.Attr {
	return slog.Duration(key, v)
}

func Any(key string, value any) slog.Attr {
	return slog.Any(key, value)
}
