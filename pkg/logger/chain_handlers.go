package logger

import (
	"context"
	"log/slog"
)

type (
	handleFunc func(context.Context, slog.Record) error
	middleware func(handleFunc) handleFunc
)

// handlerChain passes each record through the middlewares, first one outermost, before base handles it.
type handlerChain struct {
	base        slog.Handler
	middlewares []middleware
	handle      handleFunc
}

func newHandlerChain(base slog.Handler, middlewares ...middleware) *handlerChain {
	handle := base.Handle
	for i := len(middlewares) - 1; i >= 0; i-- {
		handle = middlewares[i](handle)
	}
	return &handlerChain{
		base:        base,
		middlewares: middlewares,
		handle:      handle,
	}
}

func (c *handlerChain) Enabled(ctx context.Context, lvl slog.Level) bool {
	return c.base.Enabled(ctx, lvl)
}

func (c *handlerChain) Handle(ctx context.Context, rec slog.Record) error {
	return c.handle(ctx, rec)
}

func (c *handlerChain) WithGroup(name string) slog.Handler {
	if name == "" {
		return c
	}
	return newHandlerChain(c.base.WithGroup(name), c.middlewares...)
}

func (c *handlerChain) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return c
	}
	return newHandlerChain(c.base.WithAttrs(attrs), c.middlewares...)
}
