package immunization

import "testing"

func TestCreate_UUIDAndDefaults(t *testing.T) {
	svc := NewService(NewStore())

	r, err := svc.Create(&Record{
		Patient: "Imran Shaikh", Vaccine: "Hepatitis B", DoseNo: 1,
		DueDate: "2025-09-10", Status: StatusScheduled,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(r.ID) != 36 {
		t.Errorf("id %q is not a uuid", r.ID)
	}
}

func TestCreate_RejectsUnknownVaccine(t *testing.T) {
	svc := NewService(NewStore())

	_, err := svc.Create(&Record{
		Patient: "X", Vaccine: "Homeopathy Drops", DoseNo: 1, Status: StatusScheduled,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestSearch_StatusDimension(t *testing.T) {
	svc := NewService(NewStore())

	got := svc.Search("", "", StatusOverdue)
	if len(got) != 1 || got[0].Patient != "Lakshmi Devi" {
		t.Fatalf("got %+v", got)
	}
}

func TestUpdate_MarkGiven(t *testing.T) {
	svc := NewService(NewStore())
	id := "f2a3b4c5-d6e7-4f8a-9b0c-1d2e3f4a5b6c"

	r, err := svc.Update(id, &Record{
		Patient: "Ramesh Gupta", Vaccine: "Influenza", DoseNo: 1,
		DueDate: "2025-09-01", GivenOn: "2025-09-01",
		GivenBy: "Dr. Kavita Rao", Status: StatusCompleted,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if r.Status != StatusCompleted || r.GivenOn == "" {
		t.Errorf("got %+v", r)
	}
}
