package mortality

import "github.com/carebridge/hms/internal/platform/console"

type Store struct {
	*console.Store[*DeathRecord]
}

func NewStore() *Store {
	return &Store{Store: console.NewStore(console.Prepend, Seed()...)}
}

func (s *Store) Search(term, status string) []*DeathRecord {
	return console.Filter(s.List(), term,
		[]console.TextField[*DeathRecord]{
			func(r *DeathRecord) string { return r.Deceased },
			func(r *DeathRecord) string { return r.Cause },
		},
		[]console.Categorical[*DeathRecord]{
			{Value: status, Get: func(r *DeathRecord) string { return r.Status }},
		})
}
