package scheduling

import "github.com/carebridge/hms/internal/platform/console"

// Store holds the appointment book.
type Store struct {
	*console.Store[*Appointment]
	seq *console.Sequence
}

func NewStore() *Store {
	seed := Seed()
	return &Store{
		Store: console.NewStore(console.Append, seed...),
		seq:   console.NewSequence("A%03d", len(seed)+1),
	}
}

func (s *Store) NextID() string { return s.seq.Next() }

var searchFields = []console.TextField[*Appointment]{
	func(a *Appointment) string { return a.Patient },
	func(a *Appointment) string { return a.Doctor },
}

// Search matches patient OR doctor name, constrained by status, doctor and
// department dimensions.
func (s *Store) Search(term, status, doctor, department string) []*Appointment {
	return console.Filter(s.List(), term, searchFields,
		[]console.Categorical[*Appointment]{
			{Value: status, Get: func(a *Appointment) string { return a.Status }},
			{Value: doctor, Get: func(a *Appointment) string { return a.Doctor }},
			{Value: department, Get: func(a *Appointment) string { return a.Department }},
		})
}
