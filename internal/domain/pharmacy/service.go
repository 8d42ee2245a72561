package pharmacy

import (
	"fmt"

	"github.com/carebridge/hms/internal/platform/console"
)

// Service owns both pharmacy consoles: the drug inventory and the supplier
// order book. The two stores never interact; receiving a purchase does not
// adjust stock.
type Service struct {
	medicines *MedicineStore
	purchases *PurchaseStore
}

func NewService(medicines *MedicineStore, purchases *PurchaseStore) *Service {
	return &Service{medicines: medicines, purchases: purchases}
}

func (s *Service) medicineDialog() *console.Dialog[*Medicine] {
	return console.NewDialog(s.medicines.Store, console.DialogConfig[*Medicine]{
		Defaults: MedicineDefaults,
		Clone:    CloneMedicine,
		Validate: func(m *Medicine) error { return m.Validate() },
		AssignID: func(m *Medicine) { m.ID = s.medicines.NextID() },
	})
}

func (s *Service) purchaseDialog() *console.Dialog[*Purchase] {
	return console.NewDialog(s.purchases.Store, console.DialogConfig[*Purchase]{
		Defaults: PurchaseDefaults,
		Clone:    ClonePurchase,
		Validate: func(p *Purchase) error { return p.Validate() },
		AssignID: func(p *Purchase) { p.ID = s.purchases.NextID() },
	})
}

func (s *Service) CreateMedicine(in *Medicine) (*Medicine, error) {
	d := s.medicineDialog()
	d.OpenAdd()
	applyMedicine(d.Draft(), in)
	return d.Commit()
}

func (s *Service) UpdateMedicine(id string, in *Medicine) (*Medicine, error) {
	d := s.medicineDialog()
	if err := d.OpenEdit(id); err != nil {
		return nil, err
	}
	applyMedicine(d.Draft(), in)
	return d.Commit()
}

func (s *Service) GetMedicine(id string) (*Medicine, error) {
	m, ok := s.medicines.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("medicine %s not found", id)
	}
	return m, nil
}

func (s *Service) DeleteMedicine(id string) error {
	if !s.medicines.RemoveByID(id) {
		return fmt.Errorf("medicine %s not found", id)
	}
	return nil
}

func (s *Service) SearchMedicines(term, category, status string) []*Medicine {
	return s.medicines.Search(term, category, status)
}

func (s *Service) CreatePurchase(in *Purchase) (*Purchase, error) {
	d := s.purchaseDialog()
	d.OpenAdd()
	applyPurchase(d.Draft(), in)
	return d.Commit()
}

func (s *Service) UpdatePurchase(id string, in *Purchase) (*Purchase, error) {
	d := s.purchaseDialog()
	if err := d.OpenEdit(id); err != nil {
		return nil, err
	}
	applyPurchase(d.Draft(), in)
	return d.Commit()
}

func (s *Service) GetPurchase(id string) (*Purchase, error) {
	p, ok := s.purchases.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("purchase %s not found", id)
	}
	return p, nil
}

func (s *Service) DeletePurchase(id string) error {
	if !s.purchases.RemoveByID(id) {
		return fmt.Errorf("purchase %s not found", id)
	}
	return nil
}

func (s *Service) SearchPurchases(term, status string) []*Purchase {
	return s.purchases.Search(term, status)
}

type Stats struct {
	Medicines      int            `json:"medicines"`
	ByStockStatus  map[string]int `json:"by_stock_status"`
	StockValue     float64        `json:"stock_value"`
	Purchases      int            `json:"purchases"`
	PurchaseAmount float64        `json:"purchase_amount"`
}

func (s *Service) Stats() Stats {
	meds := s.medicines.List()
	orders := s.purchases.List()
	return Stats{
		Medicines:     len(meds),
		ByStockStatus: console.CountBy(meds, func(m *Medicine) string { return m.Status }),
		StockValue: console.SumBy(meds, func(m *Medicine) float64 {
			return float64(m.Stock) * m.UnitPrice
		}),
		Purchases:      len(orders),
		PurchaseAmount: console.SumBy(orders, func(p *Purchase) float64 { return p.Amount }),
	}
}

func MedicineColumns() []console.Column[*Medicine] {
	return []console.Column[*Medicine]{
		{Header: "ID", Cell: func(m *Medicine) string { return m.ID }},
		{Header: "Name", Cell: func(m *Medicine) string { return m.Name }},
		{Header: "Category", Cell: func(m *Medicine) string { return m.Category }},
		{Header: "Batch", Cell: func(m *Medicine) string { return m.Batch }},
		{Header: "Stock", Cell: func(m *Medicine) string { return fmt.Sprintf("%d", m.Stock) }},
		{Header: "Expiry", Cell: func(m *Medicine) string { return m.Expiry }},
		{Header: "Status", Cell: func(m *Medicine) string { return StockBadges.Lookup(m.Status).Label }},
	}
}

func PurchaseColumns() []console.Column[*Purchase] {
	return []console.Column[*Purchase]{
		{Header: "Order", Cell: func(p *Purchase) string { return p.ID }},
		{Header: "Supplier", Cell: func(p *Purchase) string { return p.Supplier }},
		{Header: "Items", Cell: func(p *Purchase) string { return p.Items }},
		{Header: "Amount", Cell: func(p *Purchase) string { return fmt.Sprintf("%.2f", p.Amount) }},
		{Header: "Date", Cell: func(p *Purchase) string { return p.Date }},
		{Header: "Status", Cell: func(p *Purchase) string { return PurchaseBadges.Lookup(p.Status).Label }},
	}
}

func applyMedicine(draft, in *Medicine) {
	draft.Name = in.Name
	draft.Batch = in.Batch
	draft.Stock = in.Stock
	draft.UnitPrice = in.UnitPrice
	draft.Expiry = in.Expiry
	if in.Category != "" {
		draft.Category = in.Category
	}
	if in.Status != "" {
		draft.Status = in.Status
	}
}

func applyPurchase(draft, in *Purchase) {
	draft.Supplier = in.Supplier
	draft.Items = in.Items
	draft.Amount = in.Amount
	draft.Date = in.Date
	if in.Status != "" {
		draft.Status = in.Status
	}
}
