package bed

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/carebridge/hms/internal/platform/console"
	"github.com/carebridge/hms/internal/platform/refdata"
)

// Bed statuses.
const (
	StatusAvailable   = "Available"
	StatusOccupied    = "Occupied"
	StatusMaintenance = "Maintenance"
)

var Statuses = []string{StatusAvailable, StatusOccupied, StatusMaintenance}

// Bed is one physical bed. The id is derived from the bed number (B101 for
// number 101), not from a sequence. PatientName is a plain string reference
// with no integrity check against the patient registry.
type Bed struct {
	ID          string `json:"id"`
	Number      string `json:"number"`
	Type        string `json:"type"`
	Ward        string `json:"ward"`
	Status      string `json:"status"`
	PatientName string `json:"patient_name"`
}

func (b *Bed) EntityID() string { return b.ID }

func (b *Bed) Validate() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Number, validation.Required),
		validation.Field(&b.Type, validation.Required, validation.In(enum(refdata.BedTypes()...)...)),
		validation.Field(&b.Ward, validation.Required, validation.In(enum(refdata.Wards()...)...)),
		validation.Field(&b.Status, validation.Required, validation.In(enum(Statuses...)...)),
	)
}

var Badges = console.BadgeSet{
	StatusAvailable:   {Label: StatusAvailable, Variant: "success"},
	StatusOccupied:    {Label: StatusOccupied, Variant: "destructive"},
	StatusMaintenance: {Label: StatusMaintenance, Variant: "warning"},
}

func Defaults() *Bed {
	return &Bed{
		Type:   refdata.BedTypes()[0],
		Ward:   refdata.Wards()[0],
		Status: StatusAvailable,
	}
}

func Clone(b *Bed) *Bed {
	c := *b
	return &c
}

func enum(vals ...string) []interface{} {
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
