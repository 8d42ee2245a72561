package billing

import "github.com/carebridge/hms/internal/platform/console"

type Store struct {
	*console.Store[*Invoice]
	seq *console.Sequence
}

func NewStore() *Store {
	seed := Seed()
	return &Store{
		Store: console.NewStore(console.Prepend, seed...),
		seq:   console.NewSequence("INV-%04d", len(seed)+1),
	}
}

func (s *Store) NextID() string { return s.seq.Next() }

var searchFields = []console.TextField[*Invoice]{
	func(i *Invoice) string { return i.Patient },
	func(i *Invoice) string { return i.ID },
}

func (s *Store) Search(term, status string) []*Invoice {
	return console.Filter(s.List(), term, searchFields,
		[]console.Categorical[*Invoice]{
			{Value: status, Get: func(i *Invoice) string { return i.Status }},
		})
}
