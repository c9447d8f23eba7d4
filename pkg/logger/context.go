package logger

import (
	"context"
	"log/slog"
)

type idKey struct{}

// ContextWithID stores an identifier in ctx so IDExtractor can attach it to
// every record logged with that context.
func ContextWithID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, idKey{}, id)
}

// IDFromContext returns the identifier stored by ContextWithID.
func IDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(idKey{}).(int64)
	return id, ok
}

// IDExtractor adds the context identifier under the "id" key.
func IDExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := IDFromContext(ctx); ok {
			return slog.Int64("id", id), true
		}
		return slog.Attr{}, false
	}
}
