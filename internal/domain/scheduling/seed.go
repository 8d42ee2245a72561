package scheduling

// Seed returns the demo appointment book.
func Seed() []*Appointment {
	return []*Appointment{
		{
			ID: "A001", Patient: "Ramesh Gupta", Doctor: "Dr. Arjun Mehta",
			Department: "Cardiology", Date: "2025-08-18", TimeSlot: "10:00 AM",
			Type: "Consultation", Status: StatusConfirmed,
		},
		{
			ID: "A002", Patient: "Lakshmi Devi", Doctor: "Dr. Lakshmi Nair",
			Department: "Gynecology", Date: "2025-08-18", TimeSlot: "11:30 AM",
			Type: "Follow-up", Status: StatusPending,
		},
		{
			ID: "A003", Patient: "Imran Shaikh", Doctor: "Dr. Arjun Mehta",
			Department: "Cardiology", Date: "2025-08-19", TimeSlot: "09:00 AM",
			Type: "Emergency", Status: StatusUrgent,
		},
		{
			ID: "A004", Patient: "Anita Rao", Doctor: "Dr. Suresh Reddy",
			Department: "Orthopedics", Date: "2025-08-20", TimeSlot: "02:00 PM",
			Type: "Consultation", Status: StatusCompleted,
		},
	}
}
