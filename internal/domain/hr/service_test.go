package hr

import "testing"

func TestCreate_SequentialID(t *testing.T) {
	svc := NewService(NewStore())

	m, err := svc.Create(&StaffMember{
		Name: "Rekha Nair", Role: "Receptionist", Department: "Front Desk",
		Shift: "Morning", JoinedOn: "2025-08-01", Status: StatusActive,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.ID != "EMP005" {
		t.Errorf("id = %s, want EMP005", m.ID)
	}
}

func TestCreate_RejectsUnknownRole(t *testing.T) {
	svc := NewService(NewStore())

	_, err := svc.Create(&StaffMember{
		Name: "X", Role: "Wizard", Status: StatusActive,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
}

func TestSearch_RoleAndStatus(t *testing.T) {
	svc := NewService(NewStore())

	got := svc.Search("", "Technician", "", "")
	if len(got) != 1 || got[0].ID != "EMP003" {
		t.Fatalf("got %+v, want just EMP003", got)
	}
	got = svc.Search("", "", "", StatusOnLeave)
	if len(got) != 1 || got[0].ID != "EMP003" {
		t.Fatalf("got %+v, want just EMP003", got)
	}
}

func TestUpdate_ShiftChange(t *testing.T) {
	svc := NewService(NewStore())

	m, err := svc.Update("EMP002", &StaffMember{
		Name: "Sister Mary Thomas", Role: "Nurse", Department: "ICU Wing",
		Shift: "Morning", JoinedOn: "2021-07-15", Status: StatusActive,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if m.Shift != "Morning" {
		t.Errorf("shift = %s", m.Shift)
	}
}

func TestStats_ByShift(t *testing.T) {
	svc := NewService(NewStore())

	stats := svc.Stats()
	if stats.Total != 4 {
		t.Errorf("total = %d", stats.Total)
	}
	if stats.ByShift["Morning"] != 2 {
		t.Errorf("morning = %d", stats.ByShift["Morning"])
	}
}
