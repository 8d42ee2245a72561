package radiology

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/carebridge/hms/internal/platform/console"
)

// Test statuses.
const (
	StatusCompleted  = "Completed"
	StatusInProgress = "In Progress"
	StatusScheduled  = "Scheduled"
)

var Statuses = []string{StatusCompleted, StatusInProgress, StatusScheduled}

// Test is one ordered imaging study. Category is a plain string naming a
// Category record; no integrity is enforced between the two stores.
type Test struct {
	ID       string  `json:"id"`
	Patient  string  `json:"patient"`
	TestName string  `json:"test_name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Date     string  `json:"date"`
	Status   string  `json:"status"`
}

func (t *Test) EntityID() string { return t.ID }

func (t *Test) Validate() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Patient, validation.Required),
		validation.Field(&t.TestName, validation.Required),
		validation.Field(&t.Category, validation.Required),
		validation.Field(&t.Price, validation.Min(0.0)),
		validation.Field(&t.Status, validation.Required, validation.In(enum(Statuses...)...)),
	)
}

// Category is one imaging modality grouping.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (c *Category) EntityID() string { return c.ID }

func (c *Category) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name, validation.Required),
	)
}

var Badges = console.BadgeSet{
	StatusCompleted:  {Label: StatusCompleted, Variant: "success"},
	StatusInProgress: {Label: StatusInProgress, Variant: "warning"},
	StatusScheduled:  {Label: StatusScheduled, Variant: "secondary"},
}

func TestDefaults() *Test {
	return &Test{Status: StatusScheduled}
}

func CategoryDefaults() *Category {
	return &Category{}
}

func CloneTest(t *Test) *Test {
	c := *t
	return &c
}

func CloneCategory(c *Category) *Category {
	cp := *c
	return &cp
}

func enum(vals ...string) []interface{} {
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
