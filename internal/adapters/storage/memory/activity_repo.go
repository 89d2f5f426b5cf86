package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"cat-registry/internal/domain/activity"
)

type activityRepo struct {
	mu   sync.RWMutex
	byID map[string]activity.Entry
}

func NewActivityRepo() activity.Repository {
	return &activityRepo{
		byID: make(map[string]activity.Entry),
	}
}

func (r *activityRepo) Create(ctx context.Context, e activity.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("activity id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("activity already exists")
	}

	r.byID[e.ID] = e
	return nil
}

func (r *activityRepo) List(ctx context.Context, filter activity.ListFilter) ([]activity.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = activity.DefaultLimit
	}

	out := make([]activity.Entry, 0)
	for _, e := range r.byID {
		// Un gato se sigue también por su id anterior
		if filter.CatID != "" && e.CatID != filter.CatID && e.PreviousID != filter.CatID {
			continue
		}
		out = append(out, e)
	}

	// Orden por recorded_at desc (más reciente primero)
	sort.Slice(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
