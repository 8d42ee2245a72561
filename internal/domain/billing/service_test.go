package billing

import (
	"strings"
	"testing"
	"time"
)

func newTestService() *Service {
	return NewService(NewStore(), 5*time.Millisecond)
}

func TestInvoiceMath(t *testing.T) {
	inv := &Invoice{Amount: 1000, TaxRate: 18, Discount: 100}

	if got := inv.CGST(); got != 90 {
		t.Errorf("CGST = %v, want 90", got)
	}
	if got := inv.SGST(); got != 90 {
		t.Errorf("SGST = %v, want 90", got)
	}
	if got := inv.Total(); got != 1080 {
		t.Errorf("total = %v, want 1080", got)
	}
}

func TestCreate_DefaultsTaxRate(t *testing.T) {
	svc := newTestService()

	inv, err := svc.Create(&Invoice{
		Patient: "Anita Rao", Service: "X-Ray", Amount: 800, Status: StatusUnpaid,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inv.TaxRate != DefaultTaxRate {
		t.Errorf("tax rate = %v, want %v", inv.TaxRate, DefaultTaxRate)
	}
	if inv.ID != "INV-0004" {
		t.Errorf("id = %s, want INV-0004", inv.ID)
	}
}

func TestCreate_RejectsMissingPatient(t *testing.T) {
	svc := newTestService()
	before := svc.store.Len()

	if _, err := svc.Create(&Invoice{Service: "X", Amount: 1, Status: StatusPaid}); err == nil {
		t.Fatal("expected validation error")
	}
	if svc.store.Len() != before {
		t.Error("store changed on failed create")
	}
}

func TestPrint_SpoolsAfterDelay(t *testing.T) {
	svc := newTestService()

	job, err := svc.Print("INV-0001")
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if job.Status != PrintQueued {
		t.Errorf("status = %s, want queued", job.Status)
	}

	deadline := time.Now().Add(time.Second)
	for {
		job, err = svc.PrintJob("INV-0001")
		if err != nil {
			t.Fatalf("job: %v", err)
		}
		if job.Status == PrintReady {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("print never became ready")
		}
		time.Sleep(time.Millisecond)
	}

	if !strings.Contains(job.Document, "INV-0001") {
		t.Errorf("document missing invoice id:\n%s", job.Document)
	}
	if !strings.Contains(job.Document, "CGST") || !strings.Contains(job.Document, "SGST") {
		t.Errorf("document missing GST split:\n%s", job.Document)
	}
}

func TestPrint_UnknownInvoice(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Print("INV-9999"); err == nil {
		t.Error("expected error for unknown invoice")
	}
	if _, err := svc.PrintJob("INV-9999"); err == nil {
		t.Error("expected error for unspooled invoice")
	}
}

func TestStats_Outstanding(t *testing.T) {
	svc := newTestService()

	stats := svc.Stats()
	if stats.Total != 3 {
		t.Errorf("total = %d", stats.Total)
	}
	if stats.ByStatus[StatusUnpaid] != 2 {
		t.Errorf("unpaid = %d, want 2", stats.ByStatus[StatusUnpaid])
	}
	// INV-0002: 2400+432-200=2632, INV-0003: 18000+3240-1000=20240
	want := 2632.0 + 20240.0
	if stats.Outstanding != want {
		t.Errorf("outstanding = %v, want %v", stats.Outstanding, want)
	}
}

func TestRenderDocument_Totals(t *testing.T) {
	doc := RenderDocument(&Invoice{
		ID: "INV-0042", Patient: "Test", Service: "Test",
		Amount: 1000, TaxRate: 18, Discount: 100,
		Status: StatusUnpaid, Date: "2025-08-15",
	})
	if !strings.Contains(doc, "1080.00") {
		t.Errorf("document missing total:\n%s", doc)
	}
}
