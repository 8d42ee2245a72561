package mortality

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/carebridge/hms/internal/platform/console"
)

// Body statuses.
const (
	StatusReleased  = "Released"
	StatusProcessed = "Processed"
	StatusPending   = "Pending"
)

var Statuses = []string{StatusReleased, StatusProcessed, StatusPending}

// DeathRecord is one registry entry. IDs are opaque uuids.
type DeathRecord struct {
	ID           string `json:"id"`
	Deceased     string `json:"deceased"`
	Age          int    `json:"age"`
	Gender       string `json:"gender"`
	DateOfDeath  string `json:"date_of_death"`
	Cause        string `json:"cause"`
	AttendedBy   string `json:"attended_by"`
	NextOfKin    string `json:"next_of_kin"`
	Status       string `json:"status"`
}

func (r *DeathRecord) EntityID() string { return r.ID }

func (r *DeathRecord) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Deceased, validation.Required),
		validation.Field(&r.DateOfDeath, validation.Required),
		validation.Field(&r.Cause, validation.Required),
		validation.Field(&r.AttendedBy, validation.Required),
		validation.Field(&r.Status, validation.Required, validation.In(enum(Statuses...)...)),
	)
}

var Badges = console.BadgeSet{
	StatusReleased:  {Label: StatusReleased, Variant: "success"},
	StatusProcessed: {Label: StatusProcessed, Variant: "default"},
	StatusPending:   {Label: StatusPending, Variant: "warning"},
}

func Defaults() *DeathRecord {
	return &DeathRecord{Status: StatusPending}
}

func Clone(r *DeathRecord) *DeathRecord {
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
