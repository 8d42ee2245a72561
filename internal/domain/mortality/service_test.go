package mortality

import "testing"

func TestCreate_UUIDAssigned(t *testing.T) {
	svc := NewService(NewStore())

	r, err := svc.Create(&DeathRecord{
		Deceased: "Test Person", Age: 90, Gender: "Female",
		DateOfDeath: "2025-08-18", Cause: "Natural causes",
		AttendedBy: "Dr. Kavita Rao", Status: StatusPending,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(r.ID) != 36 {
		t.Errorf("id %q is not a uuid", r.ID)
	}
	// newest record surfaces first
	if head := svc.store.List()[0]; head.ID != r.ID {
		t.Errorf("list head = %s", head.ID)
	}
}

func TestCreate_RequiresCause(t *testing.T) {
	svc := NewService(NewStore())
	before := svc.store.Len()

	_, err := svc.Create(&DeathRecord{
		Deceased: "X", DateOfDeath: "2025-08-18",
		AttendedBy: "Dr. Kavita Rao", Status: StatusPending,
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if svc.store.Len() != before {
		t.Error("store changed on failed create")
	}
}

func TestUpdate_ReleaseBody(t *testing.T) {
	svc := NewService(NewStore())
	id := "6f7a8b9c-0d1e-4f2a-9b3c-4d5e6f7a8b9c"

	r, err := svc.Update(id, &DeathRecord{
		Deceased: "Abdul Rahman", Age: 68, Gender: "Male",
		DateOfDeath: "2025-08-17", Cause: "Multi-organ failure",
		AttendedBy: "Dr. Vikram Singh", NextOfKin: "Salma Rahman",
		Status: StatusReleased,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if r.Status != StatusReleased {
		t.Errorf("status = %s", r.Status)
	}
}

func TestSearch_CauseSubstring(t *testing.T) {
	svc := NewService(NewStore())

	got := svc.Search("respiratory", "")
	if len(got) != 1 || got[0].Deceased != "Shanti Bai" {
		t.Fatalf("got %+v", got)
	}
}
