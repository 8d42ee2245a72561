package immunization

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/carebridge/hms/internal/platform/console"
)

// Vaccination statuses.
const (
	StatusCompleted = "Completed"
	StatusScheduled = "Scheduled"
	StatusOverdue   = "Overdue"
)

var Statuses = []string{StatusCompleted, StatusScheduled, StatusOverdue}

// Vaccines lists the vaccines the form offers.
var Vaccines = []string{
	"BCG", "Hepatitis B", "DTP", "Polio (OPV)", "MMR", "Typhoid",
	"COVID-19", "Influenza", "Tetanus",
}

// Record is one vaccination entry. IDs are opaque uuids.
type Record struct {
	ID       string `json:"id"`
	Patient  string `json:"patient"`
	Vaccine  string `json:"vaccine"`
	DoseNo   int    `json:"dose_no"`
	DueDate  string `json:"due_date"`
	GivenOn  string `json:"given_on,omitempty"`
	GivenBy  string `json:"given_by,omitempty"`
	Status   string `json:"status"`
}

func (r *Record) EntityID() string { return r.ID }

func (r *Record) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Patient, validation.Required),
		validation.Field(&r.Vaccine, validation.Required, validation.In(enum(Vaccines...)...)),
		validation.Field(&r.DoseNo, validation.Required, validation.Min(1)),
		validation.Field(&r.Status, validation.Required, validation.In(enum(Statuses...)...)),
	)
}

var Badges = console.BadgeSet{
	StatusCompleted: {Label: StatusCompleted, Variant: "success"},
	StatusScheduled: {Label: StatusScheduled, Variant: "default"},
	StatusOverdue:   {Label: StatusOverdue, Variant: "destructive"},
}

func Defaults() *Record {
	return &Record{Vaccine: Vaccines[0], DoseNo: 1, Status: StatusScheduled}
}

func Clone(r *Record) *Record {
	c := *r
	return &c
}

func enum(vals ...string) []interface{} {
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
