package radiology

func SeedTests() []*Test {
	return []*Test{
		{ID: "RAD001", Patient: "Ramesh Gupta", TestName: "Chest X-Ray", Category: "X-Ray", Price: 500, Date: "2025-08-14", Status: StatusCompleted},
		{ID: "RAD002", Patient: "Imran Shaikh", TestName: "CT Brain Plain", Category: "CT Scan", Price: 4500, Date: "2025-08-15", Status: StatusInProgress},
		{ID: "RAD003", Patient: "Anita Rao", TestName: "Knee MRI", Category: "MRI", Price: 8000, Date: "2025-08-18", Status: StatusScheduled},
	}
}

func SeedCategories() []*Category {
	return []*Category{
		{ID: "RC01", Name: "X-Ray", Description: "Plain radiography"},
		{ID: "RC02", Name: "CT Scan", Description: "Computed tomography"},
		{ID: "RC03", Name: "MRI", Description: "Magnetic resonance imaging"},
		{ID: "RC04", Name: "Ultrasound", Description: "Sonography"},
	}
}
