package frontdesk

func SeedVisitors() []*Visitor {
	return []*Visitor{
		{ID: "9f1c2d1e-4b7a-4f5e-9b0a-1d2e3f4a5b6c", Name: "Suresh Gupta", Phone: "9848099887", Visiting: "Ramesh Gupta", Purpose: "Family visit", CheckIn: "2025-08-18 10:15", Status: VisitorCheckedIn},
		{ID: "2a3b4c5d-6e7f-4a1b-8c9d-0e1f2a3b4c5d", Name: "Fatima Shaikh", Phone: "9901122334", Visiting: "Imran Shaikh", Purpose: "Family visit", CheckIn: "2025-08-18 09:40", CheckOut: "2025-08-18 11:05", Status: VisitorCheckedOut},
		{ID: "7c8d9e0f-1a2b-4c3d-9e5f-6a7b8c9d0e1f", Name: "Courier - BlueDart", Phone: "9812233445", Visiting: "Pharmacy Desk", Purpose: "Delivery", CheckIn: "2025-08-18 11:30", Status: VisitorCheckedIn},
	}
}

func SeedCalls() []*CallLog {
	return []*CallLog{
		{ID: "b1c2d3e4-f5a6-4b7c-8d9e-0f1a2b3c4d5e", Caller: "Anita Rao", Phone: "9812345678", Type: CallIncoming, Subject: "Reschedule appointment", Time: "2025-08-18 09:05", Status: CallFollowUp},
		{ID: "c2d3e4f5-a6b7-4c8d-9e0f-1a2b3c4d5e6f", Caller: "MedPlus Distributors", Phone: "04066778899", Type: CallOutgoing, Subject: "Purchase order status", Time: "2025-08-18 10:20", Status: CallAnswered},
		{ID: "d3e4f5a6-b7c8-4d9e-af01-2b3c4d5e6f7a", Caller: "Unknown", Phone: "9000011122", Type: CallIncoming, Subject: "", Time: "2025-08-18 11:45", Status: CallMissed},
	}
}
