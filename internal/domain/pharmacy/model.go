package pharmacy

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/carebridge/hms/internal/platform/console"
)

// Medicine stock statuses.
const (
	StockIn  = "In Stock"
	StockLow = "Low Stock"
	StockOut = "Out of Stock"
)

var StockStatuses = []string{StockIn, StockLow, StockOut}

// Purchase order statuses.
const (
	PurchaseReceived  = "Received"
	PurchaseOrdered   = "Ordered"
	PurchaseCancelled = "Cancelled"
)

var PurchaseStatuses = []string{PurchaseReceived, PurchaseOrdered, PurchaseCancelled}

// Categories lists the medicine categories the inventory form offers.
var Categories = []string{"Tablet", "Capsule", "Syrup", "Injection", "Ointment"}

// Medicine is one inventory line.
type Medicine struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Batch     string  `json:"batch"`
	Stock     int     `json:"stock"`
	UnitPrice float64 `json:"unit_price"`
	Expiry    string  `json:"expiry"` // YYYY-MM-DD
	Status    string  `json:"status"`
}

func (m *Medicine) EntityID() string { return m.ID }

func (m *Medicine) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Name, validation.Required),
		validation.Field(&m.Category, validation.Required, validation.In(enum(Categories...)...)),
		validation.Field(&m.Stock, validation.Min(0)),
		validation.Field(&m.UnitPrice, validation.Min(0.0)),
		validation.Field(&m.Status, validation.Required, validation.In(enum(StockStatuses...)...)),
	)
}

// Purchase is one supplier order.
type Purchase struct {
	ID       string  `json:"id"`
	Supplier string  `json:"supplier"`
	Items    string  `json:"items"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"`
	Status   string  `json:"status"`
}

func (p *Purchase) EntityID() string { return p.ID }

func (p *Purchase) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Supplier, validation.Required),
		validation.Field(&p.Amount, validation.Required, validation.Min(0.0)),
		validation.Field(&p.Status, validation.Required, validation.In(enum(PurchaseStatuses...)...)),
	)
}

var StockBadges = console.BadgeSet{
	StockIn:  {Label: StockIn, Variant: "success"},
	StockLow: {Label: StockLow, Variant: "warning"},
	StockOut: {Label: StockOut, Variant: "destructive"},
}

var PurchaseBadges = console.BadgeSet{
	PurchaseReceived:  {Label: PurchaseReceived, Variant: "success"},
	PurchaseOrdered:   {Label: PurchaseOrdered, Variant: "warning"},
	PurchaseCancelled: {Label: PurchaseCancelled, Variant: "secondary"},
}

func MedicineDefaults() *Medicine {
	return &Medicine{Category: Categories[0], Status: StockIn}
}

func PurchaseDefaults() *Purchase {
	return &Purchase{Status: PurchaseOrdered}
}

func CloneMedicine(m *Medicine) *Medicine {
	c := *m
	return &c
}

func ClonePurchase(p *Purchase) *Purchase {
	c := *p
	return &c
}

func enum(vals ...string) []interface{} {
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
