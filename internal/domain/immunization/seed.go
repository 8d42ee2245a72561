package immunization

func Seed() []*Record {
	return []*Record{
		{ID: "e1f2a3b4-c5d6-4e7f-8a9b-0c1d2e3f4a5b", Patient: "Anita Rao", Vaccine: "COVID-19", DoseNo: 2, DueDate: "2025-08-05", GivenOn: "2025-08-05", GivenBy: "Dr. Kavita Rao", Status: StatusCompleted},
		{ID: "f2a3b4c5-d6e7-4f8a-9b0c-1d2e3f4a5b6c", Patient: "Ramesh Gupta", Vaccine: "Influenza", DoseNo: 1, DueDate: "2025-09-01", Status: StatusScheduled},
		{ID: "a3b4c5d6-e7f8-4a9b-8c0d-2e3f4a5b6c7d", Patient: "Lakshmi Devi", Vaccine: "Tetanus", DoseNo: 1, DueDate: "2025-07-15", Status: StatusOverdue},
	}
}
