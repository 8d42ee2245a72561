package encounter

func SeedOPD() []*OPDVisit {
	return []*OPDVisit{
		{ID: "OPD0001", Patient: "Ramesh Gupta", Doctor: "Dr. Arjun Mehta", Department: "Cardiology", Date: "2025-08-18", TokenNo: 1, Status: OPDCompleted},
		{ID: "OPD0002", Patient: "Lakshmi Devi", Doctor: "Dr. Lakshmi Nair", Department: "Gynecology", Date: "2025-08-18", TokenNo: 2, Status: OPDInConsult},
		{ID: "OPD0003", Patient: "Anita Rao", Doctor: "Dr. Suresh Reddy", Department: "Orthopedics", Date: "2025-08-18", TokenNo: 3, Status: OPDWaiting},
	}
}

func SeedIPD() []*IPDAdmission {
	return []*IPDAdmission{
		{ID: "IPD0001", Patient: "Imran Shaikh", Doctor: "Dr. Vikram Singh", Ward: "ICU Wing", BedNumber: "301", AdmittedOn: "2025-08-14", Status: IPDAdmitted},
		{ID: "IPD0002", Patient: "Ramesh Gupta", Doctor: "Dr. Arjun Mehta", Ward: "Ward A", BedNumber: "101", AdmittedOn: "2025-08-10", Status: IPDAdmitted},
		{ID: "IPD0003", Patient: "Sita Verma", Doctor: "Dr. Kavita Rao", Ward: "Ward B", BedNumber: "201", AdmittedOn: "2025-08-01", Status: IPDDischarged, DischargeOn: "2025-08-08"},
	}
}
