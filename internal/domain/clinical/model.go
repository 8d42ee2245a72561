package clinical

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/carebridge/hms/internal/platform/console"
)

// Diagnosis severities.
const (
	SeverityMild     = "Mild"
	SeverityModerate = "Moderate"
	SeveritySevere   = "Severe"
)

var Severities = []string{SeverityMild, SeverityModerate, SeveritySevere}

// Diagnosis statuses.
const (
	StatusActive   = "Active"
	StatusResolved = "Resolved"
	StatusChronic  = "Chronic"
)

var Statuses = []string{StatusActive, StatusResolved, StatusChronic}

// Diagnosis is one recorded condition. Code is free text in ICD style; it is
// display data, not a validated terminology binding.
type Diagnosis struct {
	ID       string `json:"id"`
	Patient  string `json:"patient"`
	Doctor   string `json:"doctor"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Severity string `json:"severity"`
	Date     string `json:"date"`
	Status   string `json:"status"`
}

func (d *Diagnosis) EntityID() string { return d.ID }

func (d *Diagnosis) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Patient, validation.Required),
		validation.Field(&d.Doctor, validation.Required),
		validation.Field(&d.Name, validation.Required),
		validation.Field(&d.Severity, validation.Required, validation.In(enum(Severities...)...)),
		validation.Field(&d.Status, validation.Required, validation.In(enum(Statuses...)...)),
	)
}

var Badges = console.BadgeSet{
	StatusActive:   {Label: StatusActive, Variant: "warning"},
	StatusResolved: {Label: StatusResolved, Variant: "success"},
	StatusChronic:  {Label: StatusChronic, Variant: "destructive"},
}

var SeverityBadges = console.BadgeSet{
	SeverityMild:     {Label: SeverityMild, Variant: "secondary"},
	SeverityModerate: {Label: SeverityModerate, Variant: "warning"},
	SeveritySevere:   {Label: SeveritySevere, Variant: "destructive"},
}

func Defaults() *Diagnosis {
	return &Diagnosis{Severity: SeverityMild, Status: StatusActive}
}

func Clone(d *Diagnosis) *Diagnosis {
	c := *d
	return &c
}

func enum(vals ...string) []interface{} {
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
