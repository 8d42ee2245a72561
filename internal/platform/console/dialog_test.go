package console

import (
	"fmt"
	"testing"
)

func newTestDialog(s *Store[*testRec], seq *Sequence) *Dialog[*testRec] {
	return NewDialog(s, DialogConfig[*testRec]{
		Defaults: func() *testRec { return &testRec{Status: "Active"} },
		Clone:    func(r *testRec) *testRec { c := *r; return &c },
		Validate: func(r *testRec) error {
			if r.Name == "" {
				return fmt.Errorf("name is required")
			}
			return nil
		},
		AssignID: func(r *testRec) { r.ID = seq.Next() },
	})
}

func TestDialog_AddCommit(t *testing.T) {
	s := NewStore(Append, seedRecs()...)
	d := newTestDialog(s, NewSequence("T%03d", 4))

	d.OpenAdd()
	if d.State() != AddDraft {
		t.Fatalf("expected AddDraft, got %v", d.State())
	}
	if d.Draft().Status != "Active" {
		t.Errorf("defaults not applied: %+v", d.Draft())
	}

	d.Draft().Name = "Meena Iyer"
	rec, err := d.Commit()
	if err != nil {
		t.Fatalf("unexpected commit error: %v", err)
	}
	if rec.ID != "T004" {
		t.Errorf("expected generated id T004, got %s", rec.ID)
	}
	if d.State() != Closed {
		t.Error("dialog should close on successful commit")
	}
	if s.Len() != 4 {
		t.Errorf("expected store length 4, got %d", s.Len())
	}
}

func TestDialog_AddValidationFailureKeepsDialogOpen(t *testing.T) {
	s := NewStore(Append, seedRecs()...)
	d := newTestDialog(s, NewSequence("T%03d", 4))

	d.OpenAdd()
	_, err := d.Commit() // name empty
	if err == nil {
		t.Fatal("expected validation error")
	}
	if d.State() != AddDraft {
		t.Error("failed commit must leave the dialog open")
	}
	if s.Len() != 3 {
		t.Errorf("failed commit must not touch the store, len %d", s.Len())
	}

	// Correct the input and retry on the same draft.
	d.Draft().Name = "Fixed"
	if _, err := d.Commit(); err != nil {
		t.Fatalf("retry after correction failed: %v", err)
	}
	if s.Len() != 4 {
		t.Errorf("expected 4 after retry, got %d", s.Len())
	}
}

func TestDialog_EditCommit(t *testing.T) {
	s := NewStore(Append, seedRecs()...)
	d := newTestDialog(s, NewSequence("T%03d", 4))

	if err := d.OpenEdit("T002"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.State() != EditDraft || d.EditingID() != "T002" {
		t.Fatalf("expected EditDraft on T002, got %v %s", d.State(), d.EditingID())
	}

	// Draft is a copy: mutating it must not touch the live record.
	d.Draft().Name = "Edited"
	if live, _ := s.GetByID("T002"); live.Name == "Edited" {
		t.Error("draft mutation leaked into the store before commit")
	}

	if _, err := d.Commit(); err != nil {
		t.Fatalf("unexpected commit error: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("edit changed store length: %d", s.Len())
	}
	if live, _ := s.GetByID("T002"); live.Name != "Edited" {
		t.Errorf("edit not applied, got %q", live.Name)
	}
}

func TestDialog_OpenEditMissingID(t *testing.T) {
	s := NewStore(Append, seedRecs()...)
	d := newTestDialog(s, NewSequence("T%03d", 4))

	if err := d.OpenEdit("T999"); err == nil {
		t.Fatal("expected error for missing id")
	}
	if d.State() != Closed {
		t.Error("failed OpenEdit must leave the dialog closed")
	}
}

func TestDialog_Cancel(t *testing.T) {
	s := NewStore(Append, seedRecs()...)
	d := newTestDialog(s, NewSequence("T%03d", 4))

	d.OpenAdd()
	d.Draft().Name = "Discard me"
	d.Cancel()

	if d.State() != Closed {
		t.Error("cancel must close the dialog")
	}
	if s.Len() != 3 {
		t.Errorf("cancel must not touch the store, len %d", s.Len())
	}
}

func TestDialog_CommitWhileClosed(t *testing.T) {
	s := NewStore(Append, seedRecs()...)
	d := newTestDialog(s, NewSequence("T%03d", 4))

	if _, err := d.Commit(); err == nil {
		t.Error("expected error committing a closed dialog")
	}
}

func TestCascade_Downstream(t *testing.T) {
	c := NewCascade("country", "state", "district", "mandal")

	got := c.Downstream("country")
	if len(got) != 3 || got[0] != "state" || got[2] != "mandal" {
		t.Errorf("unexpected downstream of country: %v", got)
	}
	if got := c.Downstream("district"); len(got) != 1 || got[0] != "mandal" {
		t.Errorf("unexpected downstream of district: %v", got)
	}
	if got := c.Downstream("mandal"); len(got) != 0 {
		t.Errorf("mandal should have no downstream, got %v", got)
	}
	if got := c.Downstream("pincode"); got != nil {
		t.Errorf("unknown level should have nil downstream, got %v", got)
	}
}
