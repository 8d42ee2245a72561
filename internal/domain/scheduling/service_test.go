package scheduling

import "testing"

func newTestService() *Service {
	return NewService(NewStore())
}

func TestCreate_DerivesDepartmentFromDoctor(t *testing.T) {
	svc := newTestService()

	a, err := svc.Create(&Appointment{
		Patient: "Sita Verma", Doctor: "Dr. Vikram Singh",
		Date: "2025-08-21", TimeSlot: "10:30 AM", Type: "Consultation",
		Status: StatusConfirmed,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Department != "Neurology" {
		t.Errorf("department = %q, want Neurology", a.Department)
	}
	if a.ID != "A005" {
		t.Errorf("id = %s, want A005", a.ID)
	}
}

func TestUpdate_DoctorChangeKeepsStoredDepartment(t *testing.T) {
	svc := newTestService()

	// A001 was booked under Cardiology; moving it to a neurologist must not
	// re-derive the department.
	a, err := svc.Update("A001", &Appointment{
		Patient: "Ramesh Gupta", Doctor: "Dr. Vikram Singh",
		Date: "2025-08-18", TimeSlot: "10:00 AM", Type: "Consultation",
		Status: StatusConfirmed,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if a.Department != "Cardiology" {
		t.Errorf("department = %q, want Cardiology (not re-derived)", a.Department)
	}
	if a.Doctor != "Dr. Vikram Singh" {
		t.Errorf("doctor = %q", a.Doctor)
	}
}

func TestSearch_UrgentSubsetInSeedOrder(t *testing.T) {
	svc := newTestService()

	got := svc.Search("", StatusUrgent, "", "")
	if len(got) != 1 || got[0].ID != "A003" {
		t.Fatalf("got %+v, want just A003", got)
	}
}

func TestSearch_PatientOrDoctorName(t *testing.T) {
	svc := newTestService()

	// "mehta" only appears in the doctor field
	got := svc.Search("mehta", "", "", "")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	for _, a := range got {
		if a.Doctor != "Dr. Arjun Mehta" {
			t.Errorf("unexpected match %+v", a)
		}
	}
}

func TestCreate_RejectsUnknownTimeSlot(t *testing.T) {
	svc := newTestService()
	before := svc.store.Len()

	_, err := svc.Create(&Appointment{
		Patient: "X", Doctor: "Dr. Farah Khan",
		Date: "2025-08-21", TimeSlot: "01:13 PM", Type: "Consultation",
		Status: StatusConfirmed,
	})
	if err == nil {
		t.Fatal("expected validation error for off-grid slot")
	}
	if svc.store.Len() != before {
		t.Errorf("store changed on failed create")
	}
}

func TestStats(t *testing.T) {
	svc := newTestService()

	stats := svc.Stats()
	if stats.Total != 4 {
		t.Errorf("total = %d", stats.Total)
	}
	if stats.ByDoctor["Dr. Arjun Mehta"] != 2 {
		t.Errorf("mehta count = %d, want 2", stats.ByDoctor["Dr. Arjun Mehta"])
	}
}
