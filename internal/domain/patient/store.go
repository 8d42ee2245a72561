package patient

import "github.com/carebridge/hms/internal/platform/console"

// Store holds the patient registry. IDs come from a monotonic sequence so a
// delete followed by an add can never reissue an earlier patient number.
type Store struct {
	*console.Store[*Patient]
	seq *console.Sequence
}

func NewStore() *Store {
	seed := Seed()
	return &Store{
		Store: console.NewStore(console.Prepend, seed...),
		seq:   console.NewSequence("P%03d", len(seed)+1),
	}
}

func (s *Store) NextID() string { return s.seq.Next() }

var searchFields = []console.TextField[*Patient]{
	func(p *Patient) string { return p.Name },
	func(p *Patient) string { return p.Phone },
	func(p *Patient) string { return p.ID },
}

// Search filters by free-text term OR-ed across name/phone/id, AND-ed with
// the status and blood-group dimensions.
func (s *Store) Search(term, status, bloodGroup string) []*Patient {
	return console.Filter(s.List(), term, searchFields,
		[]console.Categorical[*Patient]{
			{Value: status, Get: func(p *Patient) string { return p.Status }},
			{Value: bloodGroup, Get: func(p *Patient) string { return p.BloodGroup }},
		})
}
