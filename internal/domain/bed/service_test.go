package bed

import "testing"

func newTestService() *Service {
	return NewService(NewStore(), 150)
}

func TestUpdate_AssigningPatientOccupiesAvailableBed(t *testing.T) {
	svc := newTestService()

	b, err := svc.Update("B102", &Bed{
		Number: "102", Type: "General", Ward: "Ward A",
		Status: StatusAvailable, PatientName: "Anita Rao",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if b.Status != StatusOccupied {
		t.Errorf("status = %s, want Occupied", b.Status)
	}
}

func TestUpdate_ClearingPatientFreesOccupiedBed(t *testing.T) {
	svc := newTestService()

	b, err := svc.Update("B101", &Bed{
		Number: "101", Type: "General", Ward: "Ward A",
		Status: StatusOccupied, PatientName: "",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if b.Status != StatusAvailable {
		t.Errorf("status = %s, want Available", b.Status)
	}
}

func TestUpdate_MaintenanceBedUnaffectedByPatientField(t *testing.T) {
	svc := newTestService()

	b, err := svc.Update("B401", &Bed{
		Number: "401", Type: "Emergency", Ward: "Emergency Wing",
		Status: StatusMaintenance, PatientName: "Someone",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if b.Status != StatusMaintenance {
		t.Errorf("status = %s, want Maintenance", b.Status)
	}
}

func TestCreate_NoAutoCorrectionOnAdd(t *testing.T) {
	svc := newTestService()

	// the add path takes the form's status as given
	b, err := svc.Create(&Bed{
		Number: "103", Type: "General", Ward: "Ward A",
		Status: StatusAvailable, PatientName: "Ghost Patient",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if b.Status != StatusAvailable {
		t.Errorf("status = %s, add must not auto-correct", b.Status)
	}
	if b.ID != "B103" {
		t.Errorf("id = %s, want B103", b.ID)
	}
}

func TestStats_LiveCountsAndDisplayCapacity(t *testing.T) {
	svc := newTestService()

	stats := svc.Stats()
	if stats.Total != 5 {
		t.Errorf("total = %d, want 5", stats.Total)
	}
	if stats.DisplayCapacity != 150 {
		t.Errorf("display capacity = %d, want 150", stats.DisplayCapacity)
	}
	if stats.ByStatus[StatusOccupied] != 2 {
		t.Errorf("occupied = %d, want 2", stats.ByStatus[StatusOccupied])
	}
}

func TestSearch_ByWardAndPatientName(t *testing.T) {
	svc := newTestService()

	got := svc.Search("", "", "", "ICU Wing")
	if len(got) != 1 || got[0].ID != "B301" {
		t.Fatalf("got %+v, want just B301", got)
	}
	got = svc.Search("imran", "", "", "")
	if len(got) != 1 || got[0].ID != "B301" {
		t.Fatalf("patient search got %+v, want just B301", got)
	}
}
