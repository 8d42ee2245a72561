package refdata

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestAddressChain(t *testing.T) {
	countries := Countries()
	if len(countries) == 0 {
		t.Fatal("expected at least one country")
	}

	states := States("India")
	if len(states) == 0 {
		t.Fatal("expected states for India")
	}

	districts := Districts("India", "Telangana")
	if len(districts) == 0 {
		t.Fatal("expected districts for Telangana")
	}

	mandals := Mandals("India", "Telangana", "Hyderabad")
	if len(mandals) == 0 {
		t.Error("Hyderabad should have a mandal enumeration")
	}
}

func TestMandals_FreeTextDistrict(t *testing.T) {
	if m := Mandals("India", "Telangana", "Karimnagar"); m != nil {
		t.Errorf("Karimnagar should be free text, got %v", m)
	}
	if m := Mandals("India", "Telangana", "Nowhere"); m != nil {
		t.Errorf("unknown district should be free text, got %v", m)
	}
}

func TestStates_UnknownCountry(t *testing.T) {
	if s := States("Atlantis"); len(s) != 0 {
		t.Errorf("expected no states, got %v", s)
	}
}

func TestDoctorDepartment(t *testing.T) {
	if got := DoctorDepartment("Dr. Arjun Mehta"); got != "Cardiology" {
		t.Errorf("expected Cardiology, got %s", got)
	}
	if got := DoctorDepartment("Dr. Unknown"); got != "" {
		t.Errorf("expected empty department, got %s", got)
	}
}

func TestHandler_ListMandals(t *testing.T) {
	h := NewHandler()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?country=India&state=Telangana&district=Hyderabad", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListMandals(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Mandals  []string `json:"mandals"`
		FreeText bool     `json:"free_text"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.FreeText || len(body.Mandals) == 0 {
		t.Errorf("expected enumerated mandals, got %+v", body)
	}
}

func TestHandler_ListBloodGroups(t *testing.T) {
	h := NewHandler()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListBloodGroups(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var groups []string
	if err := json.Unmarshal(rec.Body.Bytes(), &groups); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(groups) != 8 {
		t.Errorf("expected 8 blood groups, got %d", len(groups))
	}
}
