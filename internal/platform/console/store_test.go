package console

import "testing"

type testRec struct {
	ID     string
	Name   string
	Status string
	Amount float64
}

func (r *testRec) EntityID() string { return r.ID }

func seedRecs() []*testRec {
	return []*testRec{
		{ID: "T001", Name: "John Doe", Status: "Active", Amount: 100},
		{ID: "T002", Name: "Priya Sharma", Status: "Inactive", Amount: 250},
		{ID: "T003", Name: "Ravi Kumar", Status: "Active", Amount: 75},
	}
}

func TestStore_InsertGrowsByOne(t *testing.T) {
	s := NewStore(Append, seedRecs()...)
	before := s.Len()

	s.Insert(&testRec{ID: "T004", Name: "New", Status: "Active"})

	if s.Len() != before+1 {
		t.Fatalf("expected length %d, got %d", before+1, s.Len())
	}
	if _, ok := s.GetByID("T004"); !ok {
		t.Error("inserted record not retrievable by id")
	}
}

func TestStore_InsertPolicy(t *testing.T) {
	ap := NewStore(Append, seedRecs()...)
	ap.Insert(&testRec{ID: "T004"})
	if got := ap.List()[ap.Len()-1].ID; got != "T004" {
		t.Errorf("append store: expected T004 last, got %s", got)
	}

	pp := NewStore(Prepend, seedRecs()...)
	pp.Insert(&testRec{ID: "T004"})
	if got := pp.List()[0].ID; got != "T004" {
		t.Errorf("prepend store: expected T004 first, got %s", got)
	}
}

func TestStore_ReplaceByID(t *testing.T) {
	s := NewStore(Append, seedRecs()...)
	before := s.List()

	ok := s.ReplaceByID("T002", &testRec{ID: "T002", Name: "Priya S", Status: "Active"})
	if !ok {
		t.Fatal("expected replace to find T002")
	}
	if s.Len() != len(before) {
		t.Errorf("replace changed length: %d -> %d", len(before), s.Len())
	}

	after := s.List()
	if after[1].Name != "Priya S" {
		t.Errorf("target not replaced, got %q", after[1].Name)
	}
	// Non-targeted entries keep identity.
	if after[0] != before[0] || after[2] != before[2] {
		t.Error("replace touched non-targeted records")
	}
}

func TestStore_ReplaceByID_Missing(t *testing.T) {
	s := NewStore(Append, seedRecs()...)
	if s.ReplaceByID("T999", &testRec{ID: "T999"}) {
		t.Error("expected false for missing id")
	}
	if s.Len() != 3 {
		t.Errorf("expected untouched store, len %d", s.Len())
	}
}

func TestStore_RemoveByID(t *testing.T) {
	s := NewStore(Append, seedRecs()...)

	if !s.RemoveByID("T002") {
		t.Fatal("expected remove to find T002")
	}
	if s.Len() != 2 {
		t.Errorf("expected length 2, got %d", s.Len())
	}
	if _, ok := s.GetByID("T002"); ok {
		t.Error("removed id still present")
	}
	if s.RemoveByID("T002") {
		t.Error("second remove of same id should report false")
	}
}

func TestStore_Reset(t *testing.T) {
	s := NewStore(Append, seedRecs()...)
	s.RemoveByID("T001")
	s.Insert(&testRec{ID: "T004"})

	s.Reset()

	if s.Len() != 3 {
		t.Fatalf("expected seed length 3 after reset, got %d", s.Len())
	}
	if _, ok := s.GetByID("T001"); !ok {
		t.Error("seed record missing after reset")
	}
	if _, ok := s.GetByID("T004"); ok {
		t.Error("mutation survived reset")
	}
}

func TestSequence_Monotonic(t *testing.T) {
	seq := NewSequence("T%03d", 4)
	if got := seq.Next(); got != "T004" {
		t.Errorf("expected T004, got %s", got)
	}
	if got := seq.Next(); got != "T005" {
		t.Errorf("expected T005, got %s", got)
	}
}

func TestSequence_NoReuseAfterDelete(t *testing.T) {
	s := NewStore(Append, seedRecs()...)
	seq := NewSequence("T%03d", 4)

	id := seq.Next()
	s.Insert(&testRec{ID: id})
	s.RemoveByID(id)
	next := seq.Next()

	if next == id {
		t.Errorf("sequence reissued %s after delete", id)
	}
}
