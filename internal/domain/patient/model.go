package patient

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/carebridge/hms/internal/platform/console"
	"github.com/carebridge/hms/internal/platform/refdata"
)

// Patient statuses.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusCritical = "Critical"
)

// Statuses lists the status enumeration, first value is the add-form default.
var Statuses = []string{StatusActive, StatusInactive, StatusCritical}

// Patient is one registration record. All fields are flat scalars; the
// address chain country→state→district→mandal is the one dependent-field
// group (see applyAddress in service.go).
type Patient struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	BloodGroup string `json:"blood_group"`
	Country    string `json:"country"`
	State      string `json:"state"`
	District   string `json:"district"`
	Mandal     string `json:"mandal"`
	Pincode    string `json:"pincode"`
	Address    string `json:"address"`
	Status     string `json:"status"`
	Registered string `json:"registered"` // date, YYYY-MM-DD
}

func (p *Patient) EntityID() string { return p.ID }

// Validate enforces the console's commit rules: required fields, enum
// membership, and mandal membership when the district is enumerated.
func (p *Patient) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Phone, validation.Required),
		validation.Field(&p.Age, validation.Min(0), validation.Max(130)),
		validation.Field(&p.Gender, validation.In(enum("Female", "Male", "Other")...)),
		validation.Field(&p.BloodGroup, validation.In(enum(refdata.BloodGroups()...)...)),
		validation.Field(&p.Status, validation.Required, validation.In(enum(Statuses...)...)),
		validation.Field(&p.Mandal, validation.By(p.mandalRule)),
	)
}

// mandalRule allows free text unless the district carries an enumeration.
func (p *Patient) mandalRule(value interface{}) error {
	mandal, _ := value.(string)
	if mandal == "" {
		return nil
	}
	known := refdata.Mandals(p.Country, p.State, p.District)
	if known == nil {
		return nil
	}
	for _, m := range known {
		if m == mandal {
			return nil
		}
	}
	return fmt.Errorf("mandal %s is not in district %s", mandal, p.District)
}

// Badges maps patient statuses to display badges.
var Badges = console.BadgeSet{
	StatusActive:   {Label: StatusActive, Variant: "success"},
	StatusInactive: {Label: StatusInactive, Variant: "secondary"},
	StatusCritical: {Label: StatusCritical, Variant: "destructive"},
}

// Defaults builds the empty add draft.
func Defaults() *Patient {
	return &Patient{
		Gender:  "Female",
		Country: "India",
		Status:  StatusActive,
	}
}

// Clone is the shallow copy edited while the dialog is open.
func Clone(p *Patient) *Patient {
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
