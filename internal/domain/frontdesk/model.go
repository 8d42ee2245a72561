package frontdesk

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/carebridge/hms/internal/platform/console"
)

// Visitor statuses.
const (
	VisitorCheckedIn  = "Checked In"
	VisitorCheckedOut = "Checked Out"
)

var VisitorStatuses = []string{VisitorCheckedIn, VisitorCheckedOut}

// Call directions.
const (
	CallIncoming = "Incoming"
	CallOutgoing = "Outgoing"
)

var CallTypes = []string{CallIncoming, CallOutgoing}

// Call outcomes.
const (
	CallAnswered = "Answered"
	CallMissed   = "Missed"
	CallFollowUp = "Follow Up"
)

var CallStatuses = []string{CallAnswered, CallMissed, CallFollowUp}

// Visitor is one gate-pass entry. IDs are opaque uuids; visitor passes have
// no display numbering.
type Visitor struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Visiting string `json:"visiting"` // patient name
	Purpose  string `json:"purpose"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out,omitempty"`
	Status   string `json:"status"`
}

func (v *Visitor) EntityID() string { return v.ID }

func (v *Visitor) Validate() error {
	return validation.ValidateStruct(v,
		validation.Field(&v.Name, validation.Required),
		validation.Field(&v.Visiting, validation.Required),
		validation.Field(&v.Status, validation.Required, validation.In(enum(VisitorStatuses...)...)),
	)
}

// CallLog is one switchboard entry.
type CallLog struct {
	ID      string `json:"id"`
	Caller  string `json:"caller"`
	Phone   string `json:"phone"`
	Type    string `json:"type"`
	Subject string `json:"subject"`
	Time    string `json:"time"`
	Status  string `json:"status"`
}

func (l *CallLog) EntityID() string { return l.ID }

func (l *CallLog) Validate() error {
	return validation.ValidateStruct(l,
		validation.Field(&l.Caller, validation.Required),
		validation.Field(&l.Type, validation.Required, validation.In(enum(CallTypes...)...)),
		validation.Field(&l.Status, validation.Required, validation.In(enum(CallStatuses...)...)),
	)
}

var VisitorBadges = console.BadgeSet{
	VisitorCheckedIn:  {Label: VisitorCheckedIn, Variant: "success"},
	VisitorCheckedOut: {Label: VisitorCheckedOut, Variant: "secondary"},
}

var CallBadges = console.BadgeSet{
	CallAnswered: {Label: CallAnswered, Variant: "success"},
	CallMissed:   {Label: CallMissed, Variant: "destructive"},
	CallFollowUp: {Label: CallFollowUp, Variant: "warning"},
}

func VisitorDefaults() *Visitor {
	return &Visitor{Status: VisitorCheckedIn}
}

func CallDefaults() *CallLog {
	return &CallLog{Type: CallIncoming, Status: CallAnswered}
}

func CloneVisitor(v *Visitor) *Visitor {
	c := *v
	return &c
}

func CloneCall(l *CallLog) *CallLog {
	c := *l
	return &c
}

func enum(vals ...string) []interface{} {
	out := make([]interface{}, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}
