package memory

import (
	"context"
	"testing"
	"time"

	"cat-registry/internal/domain/activity"
	"cat-registry/internal/domain/cats"
)

func TestCatRepo_KeepsInsertionOrderAndDuplicates(t *testing.T) {
	r := NewCatRepo()
	ctx := context.Background()

	_ = r.Create(ctx, cats.Cat{ID: "CAT0000001", Name: "A"})
	_ = r.Create(ctx, cats.Cat{ID: "CAT0000002", Name: "B"})
	_ = r.Create(ctx, cats.Cat{ID: "CAT0000001", Name: "C"})

	got, _ := r.GetByID(ctx, "CAT0000001")
	if got.Name != "A" {
		t.Fatalf("expected first match, got %+v", got)
	}

	n, _ := r.Delete(ctx, "CAT0000001")
	if n != 2 {
		t.Fatalf("expected 2 removed, got %d", n)
	}
	items, _ := r.List(ctx)
	if len(items) != 1 || items[0].Name != "B" {
		t.Fatalf("unexpected items: %+v", items)
	}

	if err := r.ChangeID(ctx, "CCCCCCCCCC", "AAAAAAAAAA"); err != cats.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestActivityRepo_FilterAndOrder(t *testing.T) {
	r := NewActivityRepo()
	ctx := context.Background()
	base := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

	entries := []activity.Entry{
		{ID: "1", Type: activity.EntryTypeCatAdded, CatID: "CAT0000001", RecordedAt: base},
		{ID: "2", Type: activity.EntryTypeCatAdded, CatID: "CAT0000002", RecordedAt: base.Add(time.Minute)},
		{ID: "3", Type: activity.EntryTypeIDChanged, CatID: "TAC0000001", PreviousID: "CAT0000001", RecordedAt: base.Add(2 * time.Minute)},
	}
	for _, e := range entries {
		if err := r.Create(ctx, e); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if err := r.Create(ctx, entries[0]); err == nil {
		t.Fatalf("expected duplicate id error")
	}

	all, _ := r.List(ctx, activity.ListFilter{})
	if len(all) != 3 || all[0].ID != "3" || all[2].ID != "1" {
		t.Fatalf("expected newest first, got %+v", all)
	}

	// el id anterior también encuentra el cambio
	byCat, _ := r.List(ctx, activity.ListFilter{CatID: "CAT0000001"})
	if len(byCat) != 2 || byCat[0].ID != "3" || byCat[1].ID != "1" {
		t.Fatalf("unexpected filtered list: %+v", byCat)
	}

	limited, _ := r.List(ctx, activity.ListFilter{Limit: 1})
	if len(limited) != 1 || limited[0].ID != "3" {
		t.Fatalf("unexpected limited list: %+v", limited)
	}
}
