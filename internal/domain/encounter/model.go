package encounter

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/carebridge/hms/internal/platform/console"
	"github.com/carebridge/hms/internal/platform/refdata"
)

// OPD visit statuses.
const (
	OPDWaiting   = "Waiting"
	OPDInConsult = "In Consult"
	OPDCompleted = "Completed"
)

var OPDStatuses = []string{OPDWaiting, OPDInConsult, OPDCompleted}

// IPD admission statuses.
const (
	IPDAdmitted    = "Admitted"
	IPDDischarged  = "Discharged"
	IPDTransferred = "Transferred"
)

var IPDStatuses = []string{IPDAdmitted, IPDDischarged, IPDTransferred}

// OPDVisit is one outpatient encounter.
type OPDVisit struct {
	ID         string `json:"id"`
	Patient    string `json:"patient"`
	Doctor     string `json:"doctor"`
	Department string `json:"department"`
	Date       string `json:"date"`
	TokenNo    int    `json:"token_no"`
	Status     string `json:"status"`
}

func (v *OPDVisit) EntityID() string { return v.ID }

func (v *OPDVisit) Validate() error {
	return validation.ValidateStruct(v,
		validation.Field(&v.Patient, validation.Required),
		validation.Field(&v.Doctor, validation.Required),
		validation.Field(&v.Date, validation.Required),
		validation.Field(&v.Status, validation.Required, validation.In(enum(OPDStatuses...)...)),
	)
}

// IPDAdmission is one inpatient stay. BedNumber is a plain string reference
// into the bed console; nothing checks it resolves.
type IPDAdmission struct {
	ID          string `json:"id"`
	Patient     string `json:"patient"`
	Doctor      string `json:"doctor"`
	Ward        string `json:"ward"`
	BedNumber   string `json:"bed_number"`
	AdmittedOn  string `json:"admitted_on"`
	Status      string `json:"status"`
	DischargeOn string `json:"discharge_on,omitempty"`
}

func (a *IPDAdmission) EntityID() string { return a.ID }

func (a *IPDAdmission) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Patient, validation.Required),
		validation.Field(&a.Doctor, validation.Required),
		validation.Field(&a.Ward, validation.Required, validation.In(enum(refdata.Wards()...)...)),
		validation.Field(&a.BedNumber, validation.Required),
		validation.Field(&a.AdmittedOn, validation.Required),
		validation.Field(&a.Status, validation.Required, validation.In(enum(IPDStatuses...)...)),
	)
}

var OPDBadges = console.BadgeSet{
	OPDWaiting:   {Label: OPDWaiting, Variant: "warning"},
	OPDInConsult: {Label: OPDInConsult, Variant: "default"},
	OPDCompleted: {Label: OPDCompleted, Variant: "success"},
}

var IPDBadges = console.BadgeSet{
	IPDAdmitted:    {Label: IPDAdmitted, Variant: "default"},
	IPDDischarged:  {Label: IPDDischarged, Variant: "success"},
	IPDTransferred: {Label: IPDTransferred, Variant: "warning"},
}

func OPDDefaults() *OPDVisit {
	return &OPDVisit{Status: OPDWaiting}
}

func IPDDefaults() *IPDAdmission {
	return &IPDAdmission{Ward: refdata.Wards()[0], Status: IPDAdmitted}
}

func CloneOPD(v *OPDVisit) *OPDVisit {
	c := *v
	return &c
}

func CloneIPD(a *IPDAdmission) *IPDAdmission {
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
