package entity

import (
	"context"
	"testing"
	"time"
)

type note struct {
	ID   string
	Num  int
	Text string
}

var noteDesc = Descriptor[note]{
	Key: func(n note) string { return n.ID },
	Num: func(n note) int { return n.Num },
	Stamp: func(n note, id string, num int) note {
		n.ID, n.Num = id, num
		return n
	},
}

func seedNotes() []note {
	return []note{
		{ID: "1", Num: 1, Text: "one"},
		{ID: "2", Num: 3, Text: "three"},
	}
}

func TestStore_Create(t *testing.T) {
	store := NewStore(noteDesc, seedNotes(), 0)
	ctx := context.Background()

	// the sequence picks up above the highest seeded num
	rec, err := store.Create(ctx, note{Text: "new"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if rec.Num != 4 {
		t.Errorf("Create() num = %d, want 4", rec.Num)
	}
	if rec.ID == "" || rec.ID == "1" || rec.ID == "2" {
		t.Errorf("Create() id = %q, want a fresh identifier", rec.ID)
	}

	rec2, _ := store.Create(ctx, note{Text: "newer"})
	if rec2.Num != 5 {
		t.Errorf("Create() num = %d, want 5", rec2.Num)
	}
	if rec2.ID == rec.ID {
		t.Error("Create() reused an identifier")
	}

	recs, _ := store.List(ctx)
	if len(recs) != 4 {
		t.Errorf("List() len = %d, want 4", len(recs))
	}
}

func TestStore_Create_numsNeverReused(t *testing.T) {
	store := NewStore(noteDesc, seedNotes(), 0)
	ctx := context.Background()

	rec, _ := store.Create(ctx, note{Text: "doomed"})
	if err := store.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// deletion does not free the sequence number
	rec2, _ := store.Create(ctx, note{Text: "survivor"})
	if rec2.Num != rec.Num+1 {
		t.Errorf("Create() num = %d, want %d", rec2.Num, rec.Num+1)
	}
}

func TestStore_Update(t *testing.T) {
	store := NewStore(noteDesc, seedNotes(), 0)
	ctx := context.Background()

	rec, err := store.Update(ctx, "2", note{Text: "replaced"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if rec.ID != "2" || rec.Num != 3 {
		t.Errorf("Update() identity = (%q, %d), want (\"2\", 3)", rec.ID, rec.Num)
	}
	if rec.Text != "replaced" {
		t.Errorf("Update() text = %q, want %q", rec.Text, "replaced")
	}

	if _, err := store.Update(ctx, "nope", note{Text: "x"}); err != ErrNotFound {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestStore_Delete(t *testing.T) {
	store := NewStore(noteDesc, seedNotes(), 0)
	ctx := context.Background()

	if err := store.Delete(ctx, "1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	recs, _ := store.List(ctx)
	if len(recs) != 1 {
		t.Errorf("List() len = %d, want 1", len(recs))
	}

	// a repeated delete is detectable
	if err := store.Delete(ctx, "1"); err != ErrNotFound {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestStore_List_snapshot(t *testing.T) {
	store := NewStore(noteDesc, seedNotes(), 0)
	ctx := context.Background()

	recs, _ := store.List(ctx)
	recs[0].Text = "tampered"

	recs2, _ := store.List(ctx)
	if recs2[0].Text != "one" {
		t.Error("List() returned a live reference instead of a snapshot")
	}
}

func TestStore_contextHandling(t *testing.T) {
	store := NewStore(noteDesc, seedNotes(), 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
	defer cancel()
	if _, err := store.List(ctx); err != ErrTimeout {
		t.Errorf("List() error = %v, want ErrTimeout", err)
	}

	ctx2, cancel2 := context.WithCancel(context.Background())
	cancel2()
	if _, err := store.Create(ctx2, note{Text: "x"}); err != context.Canceled {
		t.Errorf("Create() error = %v, want context.Canceled", err)
	}
}
