package immunization

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/carebridge/hms/internal/platform/console"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) dialog() *console.Dialog[*Record] {
	return console.NewDialog(s.store.Store, console.DialogConfig[*Record]{
		Defaults: Defaults,
		Clone:    Clone,
		Validate: func(r *Record) error { return r.Validate() },
		AssignID: func(r *Record) { r.ID = uuid.NewString() },
	})
}

func (s *Service) Create(in *Record) (*Record, error) {
	d := s.dialog()
	d.OpenAdd()
	apply(d.Draft(), in)
	return d.Commit()
}

func (s *Service) Update(id string, in *Record) (*Record, error) {
	d := s.dialog()
	if err := d.OpenEdit(id); err != nil {
		return nil, err
	}
	apply(d.Draft(), in)
	return d.Commit()
}

func (s *Service) Get(id string) (*Record, error) {
	r, ok := s.store.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("vaccination record %s not found", id)
	}
	return r, nil
}

func (s *Service) Delete(id string) error {
	if !s.store.RemoveByID(id) {
		return fmt.Errorf("vaccination record %s not found", id)
	}
	return nil
}

func (s *Service) Search(term, vaccine, status string) []*Record {
	return s.store.Search(term, vaccine, status)
}

type Stats struct {
	Total     int            `json:"total"`
	ByStatus  map[string]int `json:"by_status"`
	ByVaccine map[string]int `json:"by_vaccine"`
}

func (s *Service) Stats() Stats {
	records := s.store.List()
	return Stats{
		Total:     len(records),
		ByStatus:  console.CountBy(records, func(r *Record) string { return r.Status }),
		ByVaccine: console.CountBy(records, func(r *Record) string { return r.Vaccine }),
	}
}

func Columns() []console.Column[*Record] {
	return []console.Column[*Record]{
		{Header: "Patient", Cell: func(r *Record) string { return r.Patient }},
		{Header: "Vaccine", Cell: func(r *Record) string { return r.Vaccine }},
		{Header: "Dose", Cell: func(r *Record) string { return fmt.Sprintf("%d", r.DoseNo) }},
		{Header: "Due", Cell: func(r *Record) string { return r.DueDate }},
		{Header: "Given", Cell: func(r *Record) string { return r.GivenOn }},
		{Header: "Status", Cell: func(r *Record) string { return Badges.Lookup(r.Status).Label }},
	}
}

func apply(draft, in *Record) {
	draft.Patient = in.Patient
	draft.DueDate = in.DueDate
	draft.GivenOn = in.GivenOn
	draft.GivenBy = in.GivenBy
	if in.Vaccine != "" {
		draft.Vaccine = in.Vaccine
	}
	if in.DoseNo != 0 {
		draft.DoseNo = in.DoseNo
	}
	if in.Status != "" {
		draft.Status = in.Status
	}
}
