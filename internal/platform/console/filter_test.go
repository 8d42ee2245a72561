package console

import "testing"

func nameField(r *testRec) string   { return r.Name }
func statusField(r *testRec) string { return r.Status }

func TestFilter_IdentityWhenUnconstrained(t *testing.T) {
	recs := seedRecs()
	got := Filter(recs, "", []TextField[*testRec]{nameField},
		[]Categorical[*testRec]{{Value: AllValues, Get: statusField}})

	if len(got) != len(recs) {
		t.Fatalf("expected %d records, got %d", len(recs), len(got))
	}
	for i := range recs {
		if got[i] != recs[i] {
			t.Errorf("record %d changed identity", i)
		}
	}
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	recs := seedRecs()
	got := Filter(recs, "JOHN", []TextField[*testRec]{nameField}, nil)

	if len(got) != 1 || got[0].Name != "John Doe" {
		t.Fatalf("expected John Doe only, got %v", got)
	}
}

func TestFilter_ORAcrossTextFields(t *testing.T) {
	recs := []*testRec{
		{ID: "T001", Name: "John", Status: "Dr. Mehta"},
		{ID: "T002", Name: "Asha", Status: "Dr. Rao"},
	}
	fields := []TextField[*testRec]{nameField, statusField}

	if got := Filter(recs, "rao", fields, nil); len(got) != 1 || got[0].ID != "T002" {
		t.Errorf("expected match on second field, got %v", got)
	}
}

func TestFilter_CategoricalANDedWithSearch(t *testing.T) {
	recs := seedRecs()
	got := Filter(recs, "a", []TextField[*testRec]{nameField},
		[]Categorical[*testRec]{{Value: "Active", Get: statusField}})

	// "a" matches all three names, Active keeps T001 and T003.
	if len(got) != 2 || got[0].ID != "T001" || got[1].ID != "T003" {
		t.Fatalf("expected [T001 T003], got %v", got)
	}
}

func TestFilter_OrderPreserved(t *testing.T) {
	recs := seedRecs()
	got := Filter(recs, "", []TextField[*testRec]{nameField},
		[]Categorical[*testRec]{{Value: "Active", Get: statusField}})

	if len(got) != 2 || got[0].ID != "T001" || got[1].ID != "T003" {
		t.Fatalf("seed order not preserved: %v", got)
	}
}

func TestSortBy_StableOnTies(t *testing.T) {
	recs := []*testRec{
		{ID: "T001", Status: "B"},
		{ID: "T002", Status: "A"},
		{ID: "T003", Status: "A"},
	}
	got := SortBy(recs, statusField, Asc)

	if got[0].ID != "T002" || got[1].ID != "T003" || got[2].ID != "T001" {
		t.Errorf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
	// Input untouched.
	if recs[0].ID != "T001" {
		t.Error("SortBy mutated its input")
	}
}

func TestSortBy_Desc(t *testing.T) {
	got := SortBy(seedRecs(), func(r *testRec) string { return r.ID }, Desc)
	if got[0].ID != "T003" {
		t.Errorf("expected T003 first, got %s", got[0].ID)
	}
}

func TestBadgeSet_Lookup(t *testing.T) {
	badges := BadgeSet{"Active": {Label: "Active", Variant: "success"}}

	if b := badges.Lookup("Active"); b.Variant != "success" {
		t.Errorf("expected success variant, got %s", b.Variant)
	}
	if b := badges.Lookup("Weird"); b.Label != "Weird" || b.Variant != "secondary" {
		t.Errorf("expected fallback badge, got %+v", b)
	}
}

func TestCountBySumBy(t *testing.T) {
	recs := seedRecs()
	counts := CountBy(recs, statusField)
	if counts["Active"] != 2 || counts["Inactive"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
	if total := SumBy(recs, func(r *testRec) float64 { return r.Amount }); total != 425 {
		t.Errorf("expected 425, got %v", total)
	}
}

func TestProject(t *testing.T) {
	cols := []Column[*testRec]{
		{Header: "Name", Cell: nameField},
		{Header: "Status", Cell: statusField},
	}
	table := Project(seedRecs(), cols, DefaultRowActions)

	if len(table.Headers) != 2 || table.Headers[0] != "Name" {
		t.Fatalf("unexpected headers: %v", table.Headers)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(table.Rows))
	}
	if table.Rows[0].ID != "T001" || table.Rows[0].Cells[0] != "John Doe" {
		t.Errorf("unexpected first row: %+v", table.Rows[0])
	}
	if len(table.Rows[0].Actions) != 3 {
		t.Errorf("expected view/edit/delete actions, got %v", table.Rows[0].Actions)
	}
}
