package billing

import (
	"fmt"
	"time"

	"github.com/carebridge/hms/internal/platform/console"
)

type Service struct {
	store   *Store
	spooler *Spooler
}

func NewService(store *Store, printDelay time.Duration) *Service {
	return &Service{
		store:   store,
		spooler: NewSpooler(printDelay),
	}
}

func (s *Service) dialog() *console.Dialog[*Invoice] {
	return console.NewDialog(s.store.Store, console.DialogConfig[*Invoice]{
		Defaults: Defaults,
		Clone:    Clone,
		Validate: func(i *Invoice) error { return i.Validate() },
		AssignID: func(i *Invoice) { i.ID = s.store.NextID() },
	})
}

func (s *Service) Create(in *Invoice) (*Invoice, error) {
	d := s.dialog()
	d.OpenAdd()
	apply(d.Draft(), in)
	return d.Commit()
}

func (s *Service) Update(id string, in *Invoice) (*Invoice, error) {
	d := s.dialog()
	if err := d.OpenEdit(id); err != nil {
		return nil, err
	}
	apply(d.Draft(), in)
	return d.Commit()
}

func (s *Service) Get(id string) (*Invoice, error) {
	inv, ok := s.store.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("invoice %s not found", id)
	}
	return inv, nil
}

func (s *Service) Delete(id string) error {
	if !s.store.RemoveByID(id) {
		return fmt.Errorf("invoice %s not found", id)
	}
	return nil
}

func (s *Service) Search(term, status string) []*Invoice {
	return s.store.Search(term, status)
}

// Print spools a print of the invoice and returns the queued job.
func (s *Service) Print(id string) (*PrintJob, error) {
	inv, ok := s.store.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("invoice %s not found", id)
	}
	return s.spooler.Enqueue(inv), nil
}

// PrintJob reports the spooled print for an invoice.
func (s *Service) PrintJob(id string) (*PrintJob, error) {
	job, ok := s.spooler.Job(id)
	if !ok {
		return nil, fmt.Errorf("no print spooled for invoice %s", id)
	}
	return job, nil
}

type Stats struct {
	Total       int            `json:"total"`
	ByStatus    map[string]int `json:"by_status"`
	Billed      float64        `json:"billed"`
	Outstanding float64        `json:"outstanding"`
}

func (s *Service) Stats() Stats {
	records := s.store.List()
	outstanding := 0.0
	for _, inv := range records {
		if inv.Status == StatusUnpaid {
			outstanding += inv.Total()
		}
	}
	return Stats{
		Total:       len(records),
		ByStatus:    console.CountBy(records, func(i *Invoice) string { return i.Status }),
		Billed:      console.SumBy(records, func(i *Invoice) float64 { return i.Total() }),
		Outstanding: outstanding,
	}
}

func Columns() []console.Column[*Invoice] {
	return []console.Column[*Invoice]{
		{Header: "Invoice", Cell: func(i *Invoice) string { return i.ID }},
		{Header: "Patient", Cell: func(i *Invoice) string { return i.Patient }},
		{Header: "Service", Cell: func(i *Invoice) string { return i.Service }},
		{Header: "Amount", Cell: func(i *Invoice) string { return fmt.Sprintf("%.2f", i.Amount) }},
		{Header: "Total", Cell: func(i *Invoice) string { return fmt.Sprintf("%.2f", i.Total()) }},
		{Header: "Date", Cell: func(i *Invoice) string { return i.Date }},
		{Header: "Status", Cell: func(i *Invoice) string { return Badges.Lookup(i.Status).Label }},
	}
}

func apply(draft, in *Invoice) {
	draft.Patient = in.Patient
	draft.Service = in.Service
	draft.Amount = in.Amount
	draft.Discount = in.Discount
	if in.TaxRate != 0 {
		draft.TaxRate = in.TaxRate
	}
	if in.Status != "" {
		draft.Status = in.Status
	}
	if in.Date != "" {
		draft.Date = in.Date
	}
}
