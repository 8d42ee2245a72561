package hr

import "github.com/carebridge/hms/internal/platform/console"

type Store struct {
	*console.Store[*StaffMember]
	seq *console.Sequence
}

func NewStore() *Store {
	seed := Seed()
	return &Store{
		Store: console.NewStore(console.Append, seed...),
		seq:   console.NewSequence("EMP%03d", len(seed)+1),
	}
}

func (s *Store) NextID() string { return s.seq.Next() }

func (s *Store) Search(term, role, department, status string) []*StaffMember {
	return console.Filter(s.List(), term,
		[]console.TextField[*StaffMember]{
			func(m *StaffMember) string { return m.Name },
			func(m *StaffMember) string { return m.ID },
		},
		[]console.Categorical[*StaffMember]{
			{Value: role, Get: func(m *StaffMember) string { return m.Role }},
			{Value: department, Get: func(m *StaffMember) string { return m.Department }},
			{Value: status, Get: func(m *StaffMember) string { return m.Status }},
		})
}
