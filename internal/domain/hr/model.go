package hr

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/carebridge/hms/internal/platform/console"
)

// Staff statuses.
const (
	StatusActive   = "Active"
	StatusOnLeave  = "On Leave"
	StatusResigned = "Resigned"
)

var Statuses = []string{StatusActive, StatusOnLeave, StatusResigned}

// Roles lists the staff roles the form offers.
var Roles = []string{"Doctor", "Nurse", "Technician", "Pharmacist", "Receptionist", "Administrator"}

// Shifts lists the duty shifts.
var Shifts = []string{"Morning", "Evening", "Night"}

// StaffMember is one employee record.
type StaffMember struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Shift      string `json:"shift"`
	JoinedOn   string `json:"joined_on"`
	Status     string `json:"status"`
}

func (m *StaffMember) EntityID() string { return m.ID }

func (m *StaffMember) Validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Name, validation.Required),
		validation.Field(&m.Role, validation.Required, validation.In(enum(Roles...)...)),
		validation.Field(&m.Shift, validation.In(enum(Shifts...)...)),
		validation.Field(&m.Status, validation.Required, validation.In(enum(Statuses...)...)),
	)
}

var Badges = console.BadgeSet{
	StatusActive:   {Label: StatusActive, Variant: "success"},
	StatusOnLeave:  {Label: StatusOnLeave, Variant: "warning"},
	StatusResigned: {Label: StatusResigned, Variant: "secondary"},
}

func Defaults() *StaffMember {
	return &StaffMember{Role: Roles[0], Shift: Shifts[0], Status: StatusActive}
}

func Clone(m *StaffMember) *StaffMember {
	c := *m
	return &c
}

func enum(vals ...string) []interface{} {
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
