package patient

// Seed returns the demo registry loaded at startup.
func Seed() []*Patient {
	return []*Patient{
		{
			ID: "P001", Name: "Ramesh Gupta", Age: 54, Gender: "Male",
			Phone: "9848012345", Email: "ramesh.gupta@example.com",
			BloodGroup: "B+", Country: "India", State: "Telangana",
			District: "Hyderabad", Mandal: "Secunderabad", Pincode: "500003",
			Address: "12-4-56, Paradise Circle", Status: StatusActive,
			Registered: "2025-06-02",
		},
		{
			ID: "P002", Name: "Lakshmi Devi", Age: 38, Gender: "Female",
			Phone: "9848054321", Email: "lakshmi.devi@example.com",
			BloodGroup: "O+", Country: "India", State: "Andhra Pradesh",
			District: "Guntur", Mandal: "Tenali", Pincode: "522201",
			Address: "5-6-78, Brodipet", Status: StatusActive,
			Registered: "2025-06-15",
		},
		{
			ID: "P003", Name: "Imran Shaikh", Age: 61, Gender: "Male",
			Phone: "9901234567", Email: "imran.shaikh@example.com",
			BloodGroup: "AB-", Country: "India", State: "Karnataka",
			District: "Bengaluru Urban", Pincode: "560001",
			Address: "MG Road, 3rd Cross", Status: StatusCritical,
			Registered: "2025-07-01",
		},
		{
			ID: "P004", Name: "Anita Rao", Age: 29, Gender: "Female",
			Phone: "9812345678", Email: "anita.rao@example.com",
			BloodGroup: "A+", Country: "India", State: "Telangana",
			District: "Warangal", Mandal: "Hanamkonda", Pincode: "506001",
			Address: "Plot 44, Kazipet Road", Status: StatusInactive,
			Registered: "2025-07-20",
		},
	}
}
