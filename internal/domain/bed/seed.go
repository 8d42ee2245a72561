package bed

// Seed returns the demo bed inventory.
func Seed() []*Bed {
	return []*Bed{
		{ID: "B101", Number: "101", Type: "General", Ward: "Ward A", Status: StatusOccupied, PatientName: "Ramesh Gupta"},
		{ID: "B102", Number: "102", Type: "General", Ward: "Ward A", Status: StatusAvailable},
		{ID: "B201", Number: "201", Type: "Private", Ward: "Ward B", Status: StatusAvailable},
		{ID: "B301", Number: "301", Type: "ICU", Ward: "ICU Wing", Status: StatusOccupied, PatientName: "Imran Shaikh"},
		{ID: "B401", Number: "401", Type: "Emergency", Ward: "Emergency Wing", Status: StatusMaintenance},
	}
}
