package pharmacy

func SeedMedicines() []*Medicine {
	return []*Medicine{
		{ID: "MED001", Name: "Paracetamol 500mg", Category: "Tablet", Batch: "PCM-2404", Stock: 480, UnitPrice: 1.5, Expiry: "2026-11-30", Status: StockIn},
		{ID: "MED002", Name: "Amoxicillin 250mg", Category: "Capsule", Batch: "AMX-2311", Stock: 35, UnitPrice: 4.5, Expiry: "2025-12-15", Status: StockLow},
		{ID: "MED003", Name: "Cough Syrup 100ml", Category: "Syrup", Batch: "CS-2502", Stock: 0, UnitPrice: 65, Expiry: "2026-03-01", Status: StockOut},
		{ID: "MED004", Name: "Insulin Glargine", Category: "Injection", Batch: "INS-2501", Stock: 60, UnitPrice: 520, Expiry: "2025-10-20", Status: StockIn},
	}
}

func SeedPurchases() []*Purchase {
	return []*Purchase{
		{ID: "PO-0001", Supplier: "MedPlus Distributors", Items: "Paracetamol 500mg x 1000", Amount: 1500, Date: "2025-08-01", Status: PurchaseReceived},
		{ID: "PO-0002", Supplier: "Apollo Pharma Supply", Items: "Insulin Glargine x 100", Amount: 52000, Date: "2025-08-10", Status: PurchaseOrdered},
		{ID: "PO-0003", Supplier: "MedPlus Distributors", Items: "Cough Syrup x 200", Amount: 13000, Date: "2025-08-12", Status: PurchaseCancelled},
	}
}
