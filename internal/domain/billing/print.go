package billing

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Print job states.
const (
	PrintQueued = "queued"
	PrintReady  = "ready"
)

// PrintJob is one spooled invoice print.
type PrintJob struct {
	InvoiceID string `json:"invoice_id"`
	Status    string `json:"status"`
	Document  string `json:"document,omitempty"`
}

// Spooler renders invoice print views after a fixed short delay, the way the
// print action fires one step after the view opens. One job per invoice; a
// re-queue restarts the job.
type Spooler struct {
	mu    sync.Mutex
	delay time.Duration
	jobs  map[string]*PrintJob
}

func NewSpooler(delay time.Duration) *Spooler {
	return &Spooler{
		delay: delay,
		jobs:  make(map[string]*PrintJob),
	}
}

// Enqueue spools a print of inv. The rendered document becomes available
// after the spooler's delay.
func (sp *Spooler) Enqueue(inv *Invoice) *PrintJob {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	job := &PrintJob{InvoiceID: inv.ID, Status: PrintQueued}
	sp.jobs[inv.ID] = job

	doc := RenderDocument(inv)
	time.AfterFunc(sp.delay, func() {
		sp.mu.Lock()
		defer sp.mu.Unlock()
		if current := sp.jobs[inv.ID]; current == job {
			job.Status = PrintReady
			job.Document = doc
		}
	})
	return job
}

// Job reports the spooled print for an invoice id.
func (sp *Spooler) Job(invoiceID string) (*PrintJob, bool) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	job, ok := sp.jobs[invoiceID]
	if !ok {
		return nil, false
	}
	cp := *job
	return &cp, true
}

// RenderDocument renders the plain-text print view with the GST split.
func RenderDocument(inv *Invoice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CareBridge Hospital\n")
	fmt.Fprintf(&b, "Invoice %s  %s\n", inv.ID, inv.Date)
	fmt.Fprintf(&b, "Patient: %s\n", inv.Patient)
	fmt.Fprintf(&b, "Service: %s\n", inv.Service)
	fmt.Fprintf(&b, "Amount:   %10.2f\n", inv.Amount)
	fmt.Fprintf(&b, "CGST:     %10.2f\n", inv.CGST())
	fmt.Fprintf(&b, "SGST:     %10.2f\n", inv.SGST())
	fmt.Fprintf(&b, "Discount: %10.2f\n", inv.Discount)
	fmt.Fprintf(&b, "Total:    %10.2f\n", inv.Total())
	fmt.Fprintf(&b, "Status: %s\n", inv.Status)
	return b.String()
}
