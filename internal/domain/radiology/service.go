package radiology

import (
	"fmt"

	"github.com/carebridge/hms/internal/platform/console"
)

type Service struct {
	tests      *TestStore
	categories *CategoryStore
}

func NewService(tests *TestStore, categories *CategoryStore) *Service {
	return &Service{tests: tests, categories: categories}
}

func (s *Service) testDialog() *console.Dialog[*Test] {
	return console.NewDialog(s.tests.Store, console.DialogConfig[*Test]{
		Defaults: TestDefaults,
		Clone:    CloneTest,
		Validate: func(t *Test) error { return t.Validate() },
		AssignID: func(t *Test) { t.ID = s.tests.NextID() },
	})
}

func (s *Service) categoryDialog() *console.Dialog[*Category] {
	return console.NewDialog(s.categories.Store, console.DialogConfig[*Category]{
		Defaults: CategoryDefaults,
		Clone:    CloneCategory,
		Validate: func(c *Category) error { return c.Validate() },
		AssignID: func(c *Category) { c.ID = s.categories.NextID() },
	})
}

func (s *Service) CreateTest(in *Test) (*Test, error) {
	d := s.testDialog()
	d.OpenAdd()
	applyTest(d.Draft(), in)
	return d.Commit()
}

func (s *Service) UpdateTest(id string, in *Test) (*Test, error) {
	d := s.testDialog()
	if err := d.OpenEdit(id); err != nil {
		return nil, err
	}
	applyTest(d.Draft(), in)
	return d.Commit()
}

func (s *Service) GetTest(id string) (*Test, error) {
	t, ok := s.tests.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("radiology test %s not found", id)
	}
	return t, nil
}

func (s *Service) DeleteTest(id string) error {
	if !s.tests.RemoveByID(id) {
		return fmt.Errorf("radiology test %s not found", id)
	}
	return nil
}

func (s *Service) SearchTests(term, category, status string) []*Test {
	return s.tests.Search(term, category, status)
}

func (s *Service) CreateCategory(in *Category) (*Category, error) {
	d := s.categoryDialog()
	d.OpenAdd()
	applyCategory(d.Draft(), in)
	return d.Commit()
}

func (s *Service) UpdateCategory(id string, in *Category) (*Category, error) {
	d := s.categoryDialog()
	if err := d.OpenEdit(id); err != nil {
		return nil, err
	}
	applyCategory(d.Draft(), in)
	return d.Commit()
}

func (s *Service) GetCategory(id string) (*Category, error) {
	c, ok := s.categories.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("category %s not found", id)
	}
	return c, nil
}

func (s *Service) DeleteCategory(id string) error {
	if !s.categories.RemoveByID(id) {
		return fmt.Errorf("category %s not found", id)
	}
	return nil
}

func (s *Service) SearchCategories(term string) []*Category {
	return s.categories.Search(term)
}

type Stats struct {
	Tests      int            `json:"tests"`
	Categories int            `json:"categories"`
	ByStatus   map[string]int `json:"by_status"`
	ByCategory map[string]int `json:"by_category"`
	Revenue    float64        `json:"revenue"`
}

func (s *Service) Stats() Stats {
	tests := s.tests.List()
	revenue := 0.0
	for _, t := range tests {
		if t.Status == StatusCompleted {
			revenue += t.Price
		}
	}
	return Stats{
		Tests:      len(tests),
		Categories: s.categories.Len(),
		ByStatus:   console.CountBy(tests, func(t *Test) string { return t.Status }),
		ByCategory: console.CountBy(tests, func(t *Test) string { return t.Category }),
		Revenue:    revenue,
	}
}

func TestColumns() []console.Column[*Test] {
	return []console.Column[*Test]{
		{Header: "ID", Cell: func(t *Test) string { return t.ID }},
		{Header: "Patient", Cell: func(t *Test) string { return t.Patient }},
		{Header: "Test", Cell: func(t *Test) string { return t.TestName }},
		{Header: "Category", Cell: func(t *Test) string { return t.Category }},
		{Header: "Price", Cell: func(t *Test) string { return fmt.Sprintf("%.2f", t.Price) }},
		{Header: "Date", Cell: func(t *Test) string { return t.Date }},
		{Header: "Status", Cell: func(t *Test) string { return Badges.Lookup(t.Status).Label }},
	}
}

func CategoryColumns() []console.Column[*Category] {
	return []console.Column[*Category]{
		{Header: "ID", Cell: func(c *Category) string { return c.ID }},
		{Header: "Name", Cell: func(c *Category) string { return c.Name }},
		{Header: "Description", Cell: func(c *Category) string { return c.Description }},
	}
}

func applyTest(draft, in *Test) {
	draft.Patient = in.Patient
	draft.TestName = in.TestName
	draft.Category = in.Category
	draft.Price = in.Price
	draft.Date = in.Date
	if in.Status != "" {
		draft.Status = in.Status
	}
}

func applyCategory(draft, in *Category) {
	draft.Name = in.Name
	draft.Description = in.Description
}
