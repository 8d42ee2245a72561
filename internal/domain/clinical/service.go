package clinical

import (
	"fmt"

	"github.com/carebridge/hms/internal/platform/console"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) dialog() *console.Dialog[*Diagnosis] {
	return console.NewDialog(s.store.Store, console.DialogConfig[*Diagnosis]{
		Defaults: Defaults,
		Clone:    Clone,
		Validate: func(d *Diagnosis) error { return d.Validate() },
		AssignID: func(d *Diagnosis) { d.ID = s.store.NextID() },
	})
}

func (s *Service) Create(in *Diagnosis) (*Diagnosis, error) {
	d := s.dialog()
	d.OpenAdd()
	apply(d.Draft(), in)
	return d.Commit()
}

func (s *Service) Update(id string, in *Diagnosis) (*Diagnosis, error) {
	d := s.dialog()
	if err := d.OpenEdit(id); err != nil {
		return nil, err
	}
	apply(d.Draft(), in)
	return d.Commit()
}

func (s *Service) Get(id string) (*Diagnosis, error) {
	dx, ok := s.store.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("diagnosis %s not found", id)
	}
	return dx, nil
}

func (s *Service) Delete(id string) error {
	if !s.store.RemoveByID(id) {
		return fmt.Errorf("diagnosis %s not found", id)
	}
	return nil
}

func (s *Service) Search(term, severity, status string) []*Diagnosis {
	return s.store.Search(term, severity, status)
}

type Stats struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"by_status"`
	BySeverity map[string]int `json:"by_severity"`
}

func (s *Service) Stats() Stats {
	records := s.store.List()
	return Stats{
		Total:      len(records),
		ByStatus:   console.CountBy(records, func(d *Diagnosis) string { return d.Status }),
		BySeverity: console.CountBy(records, func(d *Diagnosis) string { return d.Severity }),
	}
}

func Columns() []console.Column[*Diagnosis] {
	return []console.Column[*Diagnosis]{
		{Header: "ID", Cell: func(d *Diagnosis) string { return d.ID }},
		{Header: "Patient", Cell: func(d *Diagnosis) string { return d.Patient }},
		{Header: "Code", Cell: func(d *Diagnosis) string { return d.Code }},
		{Header: "Diagnosis", Cell: func(d *Diagnosis) string { return d.Name }},
		{Header: "Severity", Cell: func(d *Diagnosis) string { return SeverityBadges.Lookup(d.Severity).Label }},
		{Header: "Status", Cell: func(d *Diagnosis) string { return Badges.Lookup(d.Status).Label }},
	}
}

func apply(draft, in *Diagnosis) {
	draft.Patient = in.Patient
	draft.Doctor = in.Doctor
	draft.Code = in.Code
	draft.Name = in.Name
	draft.Date = in.Date
	if in.Severity != "" {
		draft.Severity = in.Severity
	}
	if in.Status != "" {
		draft.Status = in.Status
	}
}
