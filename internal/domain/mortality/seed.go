package mortality

func Seed() []*DeathRecord {
	return []*DeathRecord{
		{ID: "4d5e6f7a-8b9c-4d0e-9f1a-2b3c4d5e6f7a", Deceased: "Venkat Rao", Age: 82, Gender: "Male", DateOfDeath: "2025-08-12", Cause: "Cardiac arrest", AttendedBy: "Dr. Arjun Mehta", NextOfKin: "Prasad Rao", Status: StatusReleased},
		{ID: "5e6f7a8b-9c0d-4e1f-8a2b-3c4d5e6f7a8b", Deceased: "Shanti Bai", Age: 74, Gender: "Female", DateOfDeath: "2025-08-15", Cause: "Respiratory failure", AttendedBy: "Dr. Kavita Rao", NextOfKin: "Mohan Bai", Status: StatusProcessed},
		{ID: "6f7a8b9c-0d1e-4f2a-9b3c-4d5e6f7a8b9c", Deceased: "Abdul Rahman", Age: 68, Gender: "Male", DateOfDeath: "2025-08-17", Cause: "Multi-organ failure", AttendedBy: "Dr. Vikram Singh", NextOfKin: "Salma Rahman", Status: StatusPending},
	}
}
