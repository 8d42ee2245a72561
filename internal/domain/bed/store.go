package bed

import "github.com/carebridge/hms/internal/platform/console"

type Store struct {
	*console.Store[*Bed]
}

func NewStore() *Store {
	return &Store{
		Store: console.NewStore(console.Append, Seed()...),
	}
}

var searchFields = []console.TextField[*Bed]{
	func(b *Bed) string { return b.Number },
	func(b *Bed) string { return b.PatientName },
}

func (s *Store) Search(term, status, bedType, ward string) []*Bed {
	return console.Filter(s.List(), term, searchFields,
		[]console.Categorical[*Bed]{
			{Value: status, Get: func(b *Bed) string { return b.Status }},
			{Value: bedType, Get: func(b *Bed) string { return b.Type }},
			{Value: ward, Get: func(b *Bed) string { return b.Ward }},
		})
}
