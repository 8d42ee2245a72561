package billing

// Seed returns the demo ledger.
func Seed() []*Invoice {
	return []*Invoice{
		{
			ID: "INV-0001", Patient: "Ramesh Gupta", Service: "Cardiology Consultation",
			Amount: 1500, Discount: 0, TaxRate: DefaultTaxRate,
			Status: StatusPaid, Date: "2025-08-10",
		},
		{
			ID: "INV-0002", Patient: "Lakshmi Devi", Service: "Lab Panel",
			Amount: 2400, Discount: 200, TaxRate: DefaultTaxRate,
			Status: StatusUnpaid, Date: "2025-08-12",
		},
		{
			ID: "INV-0003", Patient: "Imran Shaikh", Service: "ICU Day Charges",
			Amount: 18000, Discount: 1000, TaxRate: DefaultTaxRate,
			Status: StatusUnpaid, Date: "2025-08-14",
		},
	}
}
