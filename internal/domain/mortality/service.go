package mortality

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

func (s *Service) dialog() *console.Dialog[*DeathRecord] {
	return console.NewDialog(s.store.Store, console.DialogConfig[*DeathRecord]{
		Defaults: Defaults,
		Clone:    Clone,
		Validate: func(r *DeathRecord) error { return r.Validate() },
		AssignID: func(r *DeathRecord) { r.ID = uuid.NewString() },
	})
}

func (s *Service) Create(in *DeathRecord) (*DeathRecord, error) {
	d := s.dialog()
	d.OpenAdd()
	apply(d.Draft(), in)
	return d.Commit()
}

func (s *Service) Update(id string, in *DeathRecord) (*DeathRecord, error) {
	d := s.dialog()
	if err := d.OpenEdit(id); err != nil {
		return nil, err
	}
	apply(d.Draft(), in)
	return d.Commit()
}

func (s *Service) Get(id string) (*DeathRecord, error) {
	r, ok := s.store.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("death record %s not found", id)
	}
	return r, nil
}

func (s *Service) Delete(id string) error {
	if !s.store.RemoveByID(id) {
		return fmt.Errorf("death record %s not found", id)
	}
	return nil
}

func (s *Service) Search(term, status string) []*DeathRecord {
	return s.store.Search(term, status)
}

type Stats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

func (s *Service) Stats() Stats {
	return Stats{
		Total:    s.store.Len(),
		ByStatus: console.CountBy(s.store.List(), func(r *DeathRecord) string { return r.Status }),
	}
}

func Columns() []console.Column[*DeathRecord] {
	return []console.Column[*DeathRecord]{
		{Header: "Deceased", Cell: func(r *DeathRecord) string { return r.Deceased }},
		{Header: "Age", Cell: func(r *DeathRecord) string { return fmt.Sprintf("%d", r.Age) }},
		{Header: "Date", Cell: func(r *DeathRecord) string { return r.DateOfDeath }},
		{Header: "Cause", Cell: func(r *DeathRecord) string { return r.Cause }},
		{Header: "Attended By", Cell: func(r *DeathRecord) string { return r.AttendedBy }},
		{Header: "Status", Cell: func(r *DeathRecord) string { return Badges.Lookup(r.Status).Label }},
	}
}

func apply(draft, in *DeathRecord) {
	draft.Deceased = in.Deceased
	draft.Age = in.Age
	draft.Gender = in.Gender
	draft.DateOfDeath = in.DateOfDeath
	draft.Cause = in.Cause
	draft.AttendedBy = in.AttendedBy
	draft.NextOfKin = in.NextOfKin
	if in.Status != "" {
		draft.Status = in.Status
	}
}
