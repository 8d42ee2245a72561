package clinical

func Seed() []*Diagnosis {
	return []*Diagnosis{
		{ID: "DX001", Patient: "Ramesh Gupta", Doctor: "Dr. Arjun Mehta", Code: "I20.0", Name: "Unstable Angina", Severity: SeverityModerate, Date: "2025-08-10", Status: StatusActive},
		{ID: "DX002", Patient: "Imran Shaikh", Doctor: "Dr. Vikram Singh", Code: "I63.9", Name: "Cerebral Infarction", Severity: SeveritySevere, Date: "2025-08-14", Status: StatusActive},
		{ID: "DX003", Patient: "Anita Rao", Doctor: "Dr. Kavita Rao", Code: "E11.9", Name: "Type 2 Diabetes", Severity: SeverityMild, Date: "2025-07-02", Status: StatusChronic},
	}
}
