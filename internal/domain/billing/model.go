package billing

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/carebridge/hms/internal/platform/console"
)

// Invoice statuses.
const (
	StatusPaid   = "Paid"
	StatusUnpaid = "Unpaid"
)

var Statuses = []string{StatusPaid, StatusUnpaid}

// DefaultTaxRate is the GST percentage applied when the form leaves the rate
// blank.
const DefaultTaxRate = 18.0

// Invoice is one bill. Monetary fields are plain float64 rupee amounts; no
// currency formatting guarantees are made.
type Invoice struct {
	ID       string  `json:"id"`
	Patient  string  `json:"patient"`
	Service  string  `json:"service"`
	Amount   float64 `json:"amount"`
	Discount float64 `json:"discount"`
	TaxRate  float64 `json:"tax_rate"`
	Status   string  `json:"status"`
	Date     string  `json:"date"` // YYYY-MM-DD
}

func (i *Invoice) EntityID() string { return i.ID }

func (i *Invoice) Validate() error {
	return validation.ValidateStruct(i,
		validation.Field(&i.Patient, validation.Required),
		validation.Field(&i.Service, validation.Required),
		validation.Field(&i.Amount, validation.Required, validation.Min(0.0)),
		validation.Field(&i.Discount, validation.Min(0.0)),
		validation.Field(&i.TaxRate, validation.Min(0.0), validation.Max(100.0)),
		validation.Field(&i.Status, validation.Required, validation.In(enum(Statuses...)...)),
	)
}

// Tax is the full GST amount.
func (i *Invoice) Tax() float64 { return i.Amount * i.TaxRate / 100 }

// CGST and SGST split the GST evenly.
func (i *Invoice) CGST() float64 { return i.Amount * i.TaxRate / 200 }
func (i *Invoice) SGST() float64 { return i.Amount * i.TaxRate / 200 }

// Total is amount plus tax minus discount.
func (i *Invoice) Total() float64 { return i.Amount + i.Tax() - i.Discount }

var Badges = console.BadgeSet{
	StatusPaid:   {Label: StatusPaid, Variant: "success"},
	StatusUnpaid: {Label: StatusUnpaid, Variant: "destructive"},
}

func Defaults() *Invoice {
	return &Invoice{
		TaxRate: DefaultTaxRate,
		Status:  StatusUnpaid,
	}
}

func Clone(i *Invoice) *Invoice {
	c := *i
	return &c
}

func enum(vals ...string) []interface{} {
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
