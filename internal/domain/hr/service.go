package hr

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

func (s *Service) dialog() *console.Dialog[*StaffMember] {
	return console.NewDialog(s.store.Store, console.DialogConfig[*StaffMember]{
		Defaults: Defaults,
		Clone:    Clone,
		Validate: func(m *StaffMember) error { return m.Validate() },
		AssignID: func(m *StaffMember) { m.ID = s.store.NextID() },
	})
}

func (s *Service) Create(in *StaffMember) (*StaffMember, error) {
	d := s.dialog()
	d.OpenAdd()
	apply(d.Draft(), in)
	return d.Commit()
}

func (s *Service) Update(id string, in *StaffMember) (*StaffMember, error) {
	d := s.dialog()
	if err := d.OpenEdit(id); err != nil {
		return nil, err
	}
	apply(d.Draft(), in)
	return d.Commit()
}

func (s *Service) Get(id string) (*StaffMember, error) {
	m, ok := s.store.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("staff member %s not found", id)
	}
	return m, nil
}

func (s *Service) Delete(id string) error {
	if !s.store.RemoveByID(id) {
		return fmt.Errorf("staff member %s not found", id)
	}
	return nil
}

func (s *Service) Search(term, role, department, status string) []*StaffMember {
	return s.store.Search(term, role, department, status)
}

type Stats struct {
	Total    int            `json:"total"`
	ByRole   map[string]int `json:"by_role"`
	ByStatus map[string]int `json:"by_status"`
	ByShift  map[string]int `json:"by_shift"`
}

func (s *Service) Stats() Stats {
	records := s.store.List()
	return Stats{
		Total:    len(records),
		ByRole:   console.CountBy(records, func(m *StaffMember) string { return m.Role }),
		ByStatus: console.CountBy(records, func(m *StaffMember) string { return m.Status }),
		ByShift:  console.CountBy(records, func(m *StaffMember) string { return m.Shift }),
	}
}

func Columns() []console.Column[*StaffMember] {
	return []console.Column[*StaffMember]{
		{Header: "ID", Cell: func(m *StaffMember) string { return m.ID }},
		{Header: "Name", Cell: func(m *StaffMember) string { return m.Name }},
		{Header: "Role", Cell: func(m *StaffMember) string { return m.Role }},
		{Header: "Department", Cell: func(m *StaffMember) string { return m.Department }},
		{Header: "Shift", Cell: func(m *StaffMember) string { return m.Shift }},
		{Header: "Status", Cell: func(m *StaffMember) string { return Badges.Lookup(m.Status).Label }},
	}
}

func apply(draft, in *StaffMember) {
	draft.Name = in.Name
	draft.Department = in.Department
	draft.Phone = in.Phone
	draft.Email = in.Email
	draft.JoinedOn = in.JoinedOn
	if in.Role != "" {
		draft.Role = in.Role
	}
	if in.Shift != "" {
		draft.Shift = in.Shift
	}
	if in.Status != "" {
		draft.Status = in.Status
	}
}
