package scheduling

import (
	"fmt"

	"github.com/carebridge/hms/internal/platform/console"
	"github.com/carebridge/hms/internal/platform/refdata"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) dialog() *console.Dialog[*Appointment] {
	return console.NewDialog(s.store.Store, console.DialogConfig[*Appointment]{
		Defaults: Defaults,
		Clone:    Clone,
		Validate: func(a *Appointment) error { return a.Validate() },
		AssignID: func(a *Appointment) { a.ID = s.store.NextID() },
	})
}

// Create books an appointment, stamping the department from the doctor
// directory. This is the only place the department is derived.
func (s *Service) Create(in *Appointment) (*Appointment, error) {
	d := s.dialog()
	d.OpenAdd()
	apply(d.Draft(), in)
	d.Draft().Department = refdata.DoctorDepartment(in.Doctor)
	return d.Commit()
}

// Update edits an appointment. The stored department is kept as-is even when
// the doctor changes.
func (s *Service) Update(id string, in *Appointment) (*Appointment, error) {
	d := s.dialog()
	if err := d.OpenEdit(id); err != nil {
		return nil, err
	}
	apply(d.Draft(), in)
	return d.Commit()
}

func (s *Service) Get(id string) (*Appointment, error) {
	a, ok := s.store.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("appointment %s not found", id)
	}
	return a, nil
}

func (s *Service) Delete(id string) error {
	if !s.store.RemoveByID(id) {
		return fmt.Errorf("appointment %s not found", id)
	}
	return nil
}

func (s *Service) Search(term, status, doctor, department string) []*Appointment {
	return s.store.Search(term, status, doctor, department)
}

type Stats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
	ByDoctor map[string]int `json:"by_doctor"`
}

func (s *Service) Stats() Stats {
	records := s.store.List()
	return Stats{
		Total:    len(records),
		ByStatus: console.CountBy(records, func(a *Appointment) string { return a.Status }),
		ByDoctor: console.CountBy(records, func(a *Appointment) string { return a.Doctor }),
	}
}

func Columns() []console.Column[*Appointment] {
	return []console.Column[*Appointment]{
		{Header: "ID", Cell: func(a *Appointment) string { return a.ID }},
		{Header: "Patient", Cell: func(a *Appointment) string { return a.Patient }},
		{Header: "Doctor", Cell: func(a *Appointment) string { return a.Doctor }},
		{Header: "Department", Cell: func(a *Appointment) string { return a.Department }},
		{Header: "Date", Cell: func(a *Appointment) string { return a.Date }},
		{Header: "Slot", Cell: func(a *Appointment) string { return a.TimeSlot }},
		{Header: "Status", Cell: func(a *Appointment) string { return Badges.Lookup(a.Status).Label }},
	}
}

func apply(draft, in *Appointment) {
	draft.Patient = in.Patient
	draft.Doctor = in.Doctor
	draft.Date = in.Date
	draft.TimeSlot = in.TimeSlot
	if in.Type != "" {
		draft.Type = in.Type
	}
	if in.Status != "" {
		draft.Status = in.Status
	}
}
