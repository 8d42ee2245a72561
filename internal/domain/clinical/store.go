package clinical

import "github.com/carebridge/hms/internal/platform/console"

type Store struct {
	*console.Store[*Diagnosis]
	seq *console.Sequence
}

func NewStore() *Store {
	seed := Seed()
	return &Store{
		Store: console.NewStore(console.Append, seed...),
		seq:   console.NewSequence("DX%03d", len(seed)+1),
	}
}

func (s *Store) NextID() string { return s.seq.Next() }

func (s *Store) Search(term, severity, status string) []*Diagnosis {
	return console.Filter(s.List(), term,
		[]console.TextField[*Diagnosis]{
			func(d *Diagnosis) string { return d.Patient },
			func(d *Diagnosis) string { return d.Name },
			func(d *Diagnosis) string { return d.Code },
		},
		[]console.Categorical[*Diagnosis]{
			{Value: severity, Get: func(d *Diagnosis) string { return d.Severity }},
			{Value: status, Get: func(d *Diagnosis) string { return d.Status }},
		})
}
