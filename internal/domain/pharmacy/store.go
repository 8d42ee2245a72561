package pharmacy

import "github.com/carebridge/hms/internal/platform/console"

// MedicineStore holds the drug inventory.
type MedicineStore struct {
	*console.Store[*Medicine]
	seq *console.Sequence
}

func NewMedicineStore() *MedicineStore {
	seed := SeedMedicines()
	return &MedicineStore{
		Store: console.NewStore(console.Append, seed...),
		seq:   console.NewSequence("MED%03d", len(seed)+1),
	}
}

func (s *MedicineStore) NextID() string { return s.seq.Next() }

func (s *MedicineStore) Search(term, category, status string) []*Medicine {
	return console.Filter(s.List(), term,
		[]console.TextField[*Medicine]{
			func(m *Medicine) string { return m.Name },
			func(m *Medicine) string { return m.Batch },
		},
		[]console.Categorical[*Medicine]{
			{Value: category, Get: func(m *Medicine) string { return m.Category }},
			{Value: status, Get: func(m *Medicine) string { return m.Status }},
		})
}

// PurchaseStore holds the supplier order book.
type PurchaseStore struct {
	*console.Store[*Purchase]
	seq *console.Sequence
}

func NewPurchaseStore() *PurchaseStore {
	seed := SeedPurchases()
	return &PurchaseStore{
		Store: console.NewStore(console.Prepend, seed...),
		seq:   console.NewSequence("PO-%04d", len(seed)+1),
	}
}

func (s *PurchaseStore) NextID() string { return s.seq.Next() }

func (s *PurchaseStore) Search(term, status string) []*Purchase {
	return console.Filter(s.List(), term,
		[]console.TextField[*Purchase]{
			func(p *Purchase) string { return p.Supplier },
			func(p *Purchase) string { return p.ID },
		},
		[]console.Categorical[*Purchase]{
			{Value: status, Get: func(p *Purchase) string { return p.Status }},
		})
}
