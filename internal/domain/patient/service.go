package patient

import (
	"fmt"

	"github.com/carebridge/hms/internal/platform/console"
)

var addressCascade = console.NewCascade("country", "state", "district", "mandal")

// Service owns patient CRUD. Create and Update run through a console dialog
// so a failed validation leaves the store untouched.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) dialog() *console.Dialog[*Patient] {
	return console.NewDialog(s.store.Store, console.DialogConfig[*Patient]{
		Defaults: Defaults,
		Clone:    Clone,
		Validate: func(p *Patient) error { return p.Validate() },
		AssignID: func(p *Patient) { p.ID = s.store.NextID() },
	})
}

func (s *Service) Create(in *Patient) (*Patient, error) {
	d := s.dialog()
	d.OpenAdd()
	apply(d.Draft(), in)
	return d.Commit()
}

func (s *Service) Update(id string, in *Patient) (*Patient, error) {
	d := s.dialog()
	if err := d.OpenEdit(id); err != nil {
		return nil, err
	}
	apply(d.Draft(), in)
	return d.Commit()
}

func (s *Service) Get(id string) (*Patient, error) {
	p, ok := s.store.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("patient %s not found", id)
	}
	return p, nil
}

func (s *Service) Delete(id string) error {
	if !s.store.RemoveByID(id) {
		return fmt.Errorf("patient %s not found", id)
	}
	return nil
}

func (s *Service) Search(term, status, bloodGroup string) []*Patient {
	return s.store.Search(term, status, bloodGroup)
}

// Stats is the header-card payload: total plus live per-status counts.
type Stats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

func (s *Service) Stats() Stats {
	return Stats{
		Total:    s.store.Len(),
		ByStatus: console.CountBy(s.store.List(), func(p *Patient) string { return p.Status }),
	}
}

// Columns is the patient table projection.
func Columns() []console.Column[*Patient] {
	return []console.Column[*Patient]{
		{Header: "ID", Cell: func(p *Patient) string { return p.ID }},
		{Header: "Name", Cell: func(p *Patient) string { return p.Name }},
		{Header: "Age", Cell: func(p *Patient) string { return fmt.Sprintf("%d", p.Age) }},
		{Header: "Phone", Cell: func(p *Patient) string { return p.Phone }},
		{Header: "Blood Group", Cell: func(p *Patient) string { return p.BloodGroup }},
		{Header: "District", Cell: func(p *Patient) string { return p.District }},
		{Header: "Status", Cell: func(p *Patient) string { return Badges.Lookup(p.Status).Label }},
	}
}

// apply copies the payload onto the dialog draft. Address fields go through
// the cascade so changing an upstream level resets everything below it
// before the lower levels of the payload are applied, the same order the
// dependent selects fire in.
func apply(draft, in *Patient) {
	draft.Name = in.Name
	draft.Age = in.Age
	draft.Gender = in.Gender
	draft.Phone = in.Phone
	draft.Email = in.Email
	draft.BloodGroup = in.BloodGroup
	draft.Pincode = in.Pincode
	draft.Address = in.Address
	if in.Status != "" {
		draft.Status = in.Status
	}
	if in.Registered != "" {
		draft.Registered = in.Registered
	}
	applyAddress(draft, in)
}

func applyAddress(draft, in *Patient) {
	fields := map[string]struct {
		get func(*Patient) string
		set func(*Patient, string)
	}{
		"country":  {func(p *Patient) string { return p.Country }, func(p *Patient, v string) { p.Country = v }},
		"state":    {func(p *Patient) string { return p.State }, func(p *Patient, v string) { p.State = v }},
		"district": {func(p *Patient) string { return p.District }, func(p *Patient, v string) { p.District = v }},
		"mandal":   {func(p *Patient) string { return p.Mandal }, func(p *Patient, v string) { p.Mandal = v }},
	}
	for _, level := range addressCascade.Levels() {
		f := fields[level]
		if f.get(in) == f.get(draft) {
			continue
		}
		f.set(draft, f.get(in))
		for _, down := range addressCascade.Downstream(level) {
			fields[down].set(draft, "")
		}
	}
}
