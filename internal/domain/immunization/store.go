package immunization

import "github.com/carebridge/hms/internal/platform/console"

type Store struct {
	*console.Store[*Record]
}

func NewStore() *Store {
	return &Store{Store: console.NewStore(console.Append, Seed()...)}
}

func (s *Store) Search(term, vaccine, status string) []*Record {
	return console.Filter(s.List(), term,
		[]console.TextField[*Record]{
			func(r *Record) string { return r.Patient },
			func(r *Record) string { return r.Vaccine },
		},
		[]console.Categorical[*Record]{
			{Value: vaccine, Get: func(r *Record) string { return r.Vaccine }},
			{Value: status, Get: func(r *Record) string { return r.Status }},
		})
}
