package encounter

import (
	"fmt"

	"github.com/carebridge/hms/internal/platform/console"
)

// Service owns the outpatient queue and the inpatient admission register.
type Service struct {
	opd *OPDStore
	ipd *IPDStore
}

func NewService(opd *OPDStore, ipd *IPDStore) *Service {
	return &Service{opd: opd, ipd: ipd}
}

func (s *Service) opdDialog() *console.Dialog[*OPDVisit] {
	return console.NewDialog(s.opd.Store, console.DialogConfig[*OPDVisit]{
		Defaults: OPDDefaults,
		Clone:    CloneOPD,
		Validate: func(v *OPDVisit) error { return v.Validate() },
		AssignID: func(v *OPDVisit) { v.ID = s.opd.NextID() },
	})
}

func (s *Service) ipdDialog() *console.Dialog[*IPDAdmission] {
	return console.NewDialog(s.ipd.Store, console.DialogConfig[*IPDAdmission]{
		Defaults: IPDDefaults,
		Clone:    CloneIPD,
		Validate: func(a *IPDAdmission) error { return a.Validate() },
		AssignID: func(a *IPDAdmission) { a.ID = s.ipd.NextID() },
	})
}

// CreateOPDVisit assigns the next token number for the visit date.
func (s *Service) CreateOPDVisit(in *OPDVisit) (*OPDVisit, error) {
	d := s.opdDialog()
	d.OpenAdd()
	applyOPD(d.Draft(), in)
	token := 1
	for _, v := range s.opd.List() {
		if v.Date == in.Date && v.TokenNo >= token {
			token = v.TokenNo + 1
		}
	}
	d.Draft().TokenNo = token
	return d.Commit()
}

func (s *Service) UpdateOPDVisit(id string, in *OPDVisit) (*OPDVisit, error) {
	d := s.opdDialog()
	if err := d.OpenEdit(id); err != nil {
		return nil, err
	}
	applyOPD(d.Draft(), in)
	return d.Commit()
}

func (s *Service) GetOPDVisit(id string) (*OPDVisit, error) {
	v, ok := s.opd.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("opd visit %s not found", id)
	}
	return v, nil
}

func (s *Service) DeleteOPDVisit(id string) error {
	if !s.opd.RemoveByID(id) {
		return fmt.Errorf("opd visit %s not found", id)
	}
	return nil
}

func (s *Service) SearchOPD(term, department, status string) []*OPDVisit {
	return s.opd.Search(term, department, status)
}

func (s *Service) CreateAdmission(in *IPDAdmission) (*IPDAdmission, error) {
	d := s.ipdDialog()
	d.OpenAdd()
	applyIPD(d.Draft(), in)
	return d.Commit()
}

func (s *Service) UpdateAdmission(id string, in *IPDAdmission) (*IPDAdmission, error) {
	d := s.ipdDialog()
	if err := d.OpenEdit(id); err != nil {
		return nil, err
	}
	applyIPD(d.Draft(), in)
	return d.Commit()
}

func (s *Service) GetAdmission(id string) (*IPDAdmission, error) {
	a, ok := s.ipd.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("admission %s not found", id)
	}
	return a, nil
}

func (s *Service) DeleteAdmission(id string) error {
	if !s.ipd.RemoveByID(id) {
		return fmt.Errorf("admission %s not found", id)
	}
	return nil
}

func (s *Service) SearchIPD(term, ward, status string) []*IPDAdmission {
	return s.ipd.Search(term, ward, status)
}

type Stats struct {
	OPDVisits    int            `json:"opd_visits"`
	OPDByStatus  map[string]int `json:"opd_by_status"`
	Admissions   int            `json:"admissions"`
	IPDByStatus  map[string]int `json:"ipd_by_status"`
	CurrentBeds  int            `json:"current_beds"`
}

func (s *Service) Stats() Stats {
	opd := s.opd.List()
	ipd := s.ipd.List()
	current := 0
	for _, a := range ipd {
		if a.Status == IPDAdmitted {
			current++
		}
	}
	return Stats{
		OPDVisits:   len(opd),
		OPDByStatus: console.CountBy(opd, func(v *OPDVisit) string { return v.Status }),
		Admissions:  len(ipd),
		IPDByStatus: console.CountBy(ipd, func(a *IPDAdmission) string { return a.Status }),
		CurrentBeds: current,
	}
}

func OPDColumns() []console.Column[*OPDVisit] {
	return []console.Column[*OPDVisit]{
		{Header: "ID", Cell: func(v *OPDVisit) string { return v.ID }},
		{Header: "Token", Cell: func(v *OPDVisit) string { return fmt.Sprintf("%d", v.TokenNo) }},
		{Header: "Patient", Cell: func(v *OPDVisit) string { return v.Patient }},
		{Header: "Doctor", Cell: func(v *OPDVisit) string { return v.Doctor }},
		{Header: "Department", Cell: func(v *OPDVisit) string { return v.Department }},
		{Header: "Status", Cell: func(v *OPDVisit) string { return OPDBadges.Lookup(v.Status).Label }},
	}
}

func IPDColumns() []console.Column[*IPDAdmission] {
	return []console.Column[*IPDAdmission]{
		{Header: "ID", Cell: func(a *IPDAdmission) string { return a.ID }},
		{Header: "Patient", Cell: func(a *IPDAdmission) string { return a.Patient }},
		{Header: "Ward", Cell: func(a *IPDAdmission) string { return a.Ward }},
		{Header: "Bed", Cell: func(a *IPDAdmission) string { return a.BedNumber }},
		{Header: "Admitted", Cell: func(a *IPDAdmission) string { return a.AdmittedOn }},
		{Header: "Status", Cell: func(a *IPDAdmission) string { return IPDBadges.Lookup(a.Status).Label }},
	}
}

func applyOPD(draft, in *OPDVisit) {
	draft.Patient = in.Patient
	draft.Doctor = in.Doctor
	draft.Department = in.Department
	draft.Date = in.Date
	if in.TokenNo != 0 {
		draft.TokenNo = in.TokenNo
	}
	if in.Status != "" {
		draft.Status = in.Status
	}
}

func applyIPD(draft, in *IPDAdmission) {
	draft.Patient = in.Patient
	draft.Doctor = in.Doctor
	draft.BedNumber = in.BedNumber
	draft.AdmittedOn = in.AdmittedOn
	draft.DischargeOn = in.DischargeOn
	if in.Ward != "" {
		draft.Ward = in.Ward
	}
	if in.Status != "" {
		draft.Status = in.Status
	}
}
