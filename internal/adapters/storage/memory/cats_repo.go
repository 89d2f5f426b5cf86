package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"cat-registry/internal/domain/cats"
)

// catRepo mantiene el orden de inserción en un slice (los ids pueden repetirse).
type catRepo struct {
	mu   sync.RWMutex
	cats []cats.Cat
}

func NewCatRepo() cats.Repository {
	return &catRepo{
		cats: make([]cats.Cat, 0),
	}
}

func (r *catRepo) List(ctx context.Context) ([]cats.Cat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]cats.Cat, len(r.cats))
	copy(out, r.cats)
	return out, nil
}

func (r *catRepo) GetByID(ctx context.Context, id string) (cats.Cat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.cats[i], nil
	}
	return cats.Cat{}, cats.ErrNotFound
}

func (r *catRepo) Create(ctx context.Context, c cats.Cat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("cat id required")
	}
	r.cats = append(r.cats, c)
	return nil
}

func (r *catRepo) Update(ctx context.Context, c cats.Cat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(c.ID)
	if i < 0 {
		return cats.ErrNotFound
	}
	r.cats[i] = c
	return nil
}

func (r *catRepo) Delete(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.cats[:0]
	removed := 0
	for _, c := range r.cats {
		if c.ID == id {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	r.cats = kept
	return removed, nil
}

func (r *catRepo) ChangeID(ctx context.Context, oldID, newID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(oldID)
	if i < 0 {
		return cats.ErrNotFound
	}
	r.cats[i].ID = newID
	return nil
}

func (r *catRepo) indexOf(id string) int {
	for i, c := range r.cats {
		if c.ID == id {
			return i
		}
	}
	return -1
}
