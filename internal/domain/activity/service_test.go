package activity

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	entries []Entry
	last    ListFilter
}

func (r *testRepo) Create(ctx context.Context, e Entry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *testRepo) List(ctx context.Context, filter ListFilter) ([]Entry, error) {
	r.last = filter
	return r.entries, nil
}

func TestService_Record(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	ctx := WithSource(context.Background(), SourceCLI)
	if err := svc.Record(ctx, EntryTypeIDChanged, "TAC0000001", "CAT0000001"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(repo.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(repo.entries))
	}
	e := repo.entries[0]
	if e.ID == "" || e.Type != EntryTypeIDChanged || e.CatID != "TAC0000001" || e.PreviousID != "CAT0000001" {
		t.Fatalf("unexpected entry: %+v", e)
	}
	if e.Source != SourceCLI || !e.RecordedAt.Equal(now) {
		t.Fatalf("unexpected source/time: %+v", e)
	}
}

func TestService_Record_RequiresTypeAndCat(t *testing.T) {
	svc := NewService(&testRepo{})

	if err := svc.Record(context.Background(), "", "CAT0000001", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := svc.Record(context.Background(), EntryTypeCatAdded, " ", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Record_UnknownSource(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	_ = svc.Record(context.Background(), EntryTypeCatAdded, "CAT0000001", "")
	if repo.entries[0].Source != SourceUnknown {
		t.Fatalf("expected unknown source, got %q", repo.entries[0].Source)
	}
}

func TestService_List_ClampsLimit(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	_, _ = svc.List(context.Background(), ListFilter{})
	if repo.last.Limit != DefaultLimit {
		t.Fatalf("expected default limit, got %d", repo.last.Limit)
	}
	_, _ = svc.List(context.Background(), ListFilter{Limit: 1000, CatID: " CAT0000001 "})
	if repo.last.Limit != MaxLimit || repo.last.CatID != "CAT0000001" {
		t.Fatalf("unexpected filter: %+v", repo.last)
	}
}
