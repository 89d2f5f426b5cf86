package activity

import (
	"context"
	"time"
)

// Entry es una mutación registrada sobre la colección de gatos.
type Entry struct {
	ID   string
	Type EntryType

	CatID      string
	PreviousID string // solo para cambios de id

	Source     Source
	RecordedAt time.Time
}


type ctxKey string

const sourceKey ctxKey = "activity_source"

// WithSource marca el origen (api/cli) de las mutaciones hechas con ctx.
func WithSource(ctx context.Context, src Source) context.Context {
	return context.WithValue(ctx, sourceKey, src)
}

func SourceFrom(ctx context.Context) Source {
	if src, ok := ctx.Value(sourceKey).(Source); ok && src != "" {
		return src
	}
	return SourceUnknown
}
