package hr

func Seed() []*StaffMember {
	return []*StaffMember{
		{ID: "EMP001", Name: "Dr. Arjun Mehta", Role: "Doctor", Department: "Cardiology", Phone: "9848800001", Email: "arjun.mehta@carebridge.example", Shift: "Morning", JoinedOn: "2019-04-01", Status: StatusActive},
		{ID: "EMP002", Name: "Sister Mary Thomas", Role: "Nurse", Department: "ICU Wing", Phone: "9848800002", Email: "mary.thomas@carebridge.example", Shift: "Night", JoinedOn: "2021-07-15", Status: StatusActive},
		{ID: "EMP003", Name: "Kiran Kumar", Role: "Technician", Department: "Radiology", Phone: "9848800003", Email: "kiran.kumar@carebridge.example", Shift: "Evening", JoinedOn: "2022-01-10", Status: StatusOnLeave},
		{ID: "EMP004", Name: "Prakash Jha", Role: "Pharmacist", Department: "Pharmacy", Phone: "9848800004", Email: "prakash.jha@carebridge.example", Shift: "Morning", JoinedOn: "2020-09-01", Status: StatusActive},
	}
}
