package scheduling

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/carebridge/hms/internal/platform/console"
	"github.com/carebridge/hms/internal/platform/refdata"
)

// Appointment statuses.
const (
	StatusConfirmed = "Confirmed"
	StatusPending   = "Pending"
	StatusUrgent    = "Urgent"
	StatusCompleted = "Completed"
)

var Statuses = []string{StatusConfirmed, StatusPending, StatusUrgent, StatusCompleted}

// Appointment books one patient/doctor slot. Department is stamped from the
// doctor directory when the appointment is created and never re-derived on
// edit, even if the doctor changes.
type Appointment struct {
	ID         string `json:"id"`
	Patient    string `json:"patient"`
	Doctor     string `json:"doctor"`
	Department string `json:"department"`
	Date       string `json:"date"` // YYYY-MM-DD
	TimeSlot   string `json:"time_slot"`
	Type       string `json:"type"`
	Status     string `json:"status"`
}

func (a *Appointment) EntityID() string { return a.ID }

func (a *Appointment) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Patient, validation.Required),
		validation.Field(&a.Doctor, validation.Required),
		validation.Field(&a.Date, validation.Required),
		validation.Field(&a.TimeSlot, validation.Required, validation.In(enum(refdata.TimeSlots()...)...)),
		validation.Field(&a.Type, validation.Required, validation.In(enum(refdata.AppointmentTypes()...)...)),
		validation.Field(&a.Status, validation.Required, validation.In(enum(Statuses...)...)),
	)
}

var Badges = console.BadgeSet{
	StatusConfirmed: {Label: StatusConfirmed, Variant: "success"},
	StatusPending:   {Label: StatusPending, Variant: "warning"},
	StatusUrgent:    {Label: StatusUrgent, Variant: "destructive"},
	StatusCompleted: {Label: StatusCompleted, Variant: "secondary"},
}

func Defaults() *Appointment {
	return &Appointment{
		Type:   refdata.AppointmentTypes()[0],
		Status: StatusPending,
	}
}

func Clone(a *Appointment) *Appointment {
	c := *a
	return &c
}

func enum(vals ...string) []interface{} {
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
