package radiology

import "github.com/carebridge/hms/internal/platform/console"

type TestStore struct {
	*console.Store[*Test]
	seq *console.Sequence
}

func NewTestStore() *TestStore {
	seed := SeedTests()
	return &TestStore{
		Store: console.NewStore(console.Append, seed...),
		seq:   console.NewSequence("RAD%03d", len(seed)+1),
	}
}

func (s *TestStore) NextID() string { return s.seq.Next() }

func (s *TestStore) Search(term, category, status string) []*Test {
	return console.Filter(s.List(), term,
		[]console.TextField[*Test]{
			func(t *Test) string { return t.Patient },
			func(t *Test) string { return t.TestName },
		},
		[]console.Categorical[*Test]{
			{Value: category, Get: func(t *Test) string { return t.Category }},
			{Value: status, Get: func(t *Test) string { return t.Status }},
		})
}

type CategoryStore struct {
	*console.Store[*Category]
	seq *console.Sequence
}

func NewCategoryStore() *CategoryStore {
	seed := SeedCategories()
	return &CategoryStore{
		Store: console.NewStore(console.Append, seed...),
		seq:   console.NewSequence("RC%02d", len(seed)+1),
	}
}

func (s *CategoryStore) NextID() string { return s.seq.Next() }

func (s *CategoryStore) Search(term string) []*Category {
	return console.Filter(s.List(), term,
		[]console.TextField[*Category]{
			func(c *Category) string { return c.Name },
			func(c *Category) string { return c.Description },
		}, nil)
}
