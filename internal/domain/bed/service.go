package bed

import (
	"fmt"

	"github.com/carebridge/hms/internal/platform/console"
)

// Service owns the bed inventory. The occupancy auto-correction runs in the
// update path only, matching the edit handler it came from: an add accepts
// whatever status the form carries.
type Service struct {
	store    *Store
	capacity int // configured display capacity for the stats card
}

func NewService(store *Store, capacity int) *Service {
	return &Service{store: store, capacity: capacity}
}

func (s *Service) dialog() *console.Dialog[*Bed] {
	return console.NewDialog(s.store.Store, console.DialogConfig[*Bed]{
		Defaults: Defaults,
		Clone:    Clone,
		Validate: func(b *Bed) error { return b.Validate() },
		AssignID: func(b *Bed) { b.ID = "B" + b.Number },
	})
}

func (s *Service) Create(in *Bed) (*Bed, error) {
	d := s.dialog()
	d.OpenAdd()
	apply(d.Draft(), in)
	return d.Commit()
}

func (s *Service) Update(id string, in *Bed) (*Bed, error) {
	d := s.dialog()
	if err := d.OpenEdit(id); err != nil {
		return nil, err
	}
	draft := d.Draft()
	prior := draft.Status
	apply(draft, in)
	correctOccupancy(draft, prior)
	return d.Commit()
}

// correctOccupancy keeps status consistent with the patient assignment:
// assigning a patient to an Available bed makes it Occupied, clearing the
// patient off an Occupied bed makes it Available. Maintenance is left alone.
func correctOccupancy(b *Bed, prior string) {
	if b.PatientName != "" && prior == StatusAvailable {
		b.Status = StatusOccupied
	}
	if b.PatientName == "" && prior == StatusOccupied {
		b.Status = StatusAvailable
	}
}

func (s *Service) Get(id string) (*Bed, error) {
	b, ok := s.store.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("bed %s not found", id)
	}
	return b, nil
}

func (s *Service) Delete(id string) error {
	if !s.store.RemoveByID(id) {
		return fmt.Errorf("bed %s not found", id)
	}
	return nil
}

func (s *Service) Search(term, status, bedType, ward string) []*Bed {
	return s.store.Search(term, status, bedType, ward)
}

// Stats carries both the live store counts and the configured display
// capacity. The two are intentionally independent values; the capacity card
// is a facility-level figure, not the length of the inventory list.
type Stats struct {
	Total           int            `json:"total"`
	DisplayCapacity int            `json:"display_capacity"`
	ByStatus        map[string]int `json:"by_status"`
	ByWard          map[string]int `json:"by_ward"`
}

func (s *Service) Stats() Stats {
	records := s.store.List()
	return Stats{
		Total:           len(records),
		DisplayCapacity: s.capacity,
		ByStatus:        console.CountBy(records, func(b *Bed) string { return b.Status }),
		ByWard:          console.CountBy(records, func(b *Bed) string { return b.Ward }),
	}
}

func Columns() []console.Column[*Bed] {
	return []console.Column[*Bed]{
		{Header: "Bed", Cell: func(b *Bed) string { return b.ID }},
		{Header: "Type", Cell: func(b *Bed) string { return b.Type }},
		{Header: "Ward", Cell: func(b *Bed) string { return b.Ward }},
		{Header: "Patient", Cell: func(b *Bed) string { return b.PatientName }},
		{Header: "Status", Cell: func(b *Bed) string { return Badges.Lookup(b.Status).Label }},
	}
}

func apply(draft, in *Bed) {
	draft.Number = in.Number
	draft.Type = in.Type
	draft.Ward = in.Ward
	draft.PatientName = in.PatientName
	if in.Status != "" {
		draft.Status = in.Status
	}
}
