package patient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	e := echo.New()
	h := NewHandler(NewService(NewStore()))
	h.RegisterRoutes(e.Group("/api/v1"))
	return h, e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandler_ListEnvelope(t *testing.T) {
	_, e := newTestHandler()

	rec := doRequest(e, http.MethodGet, "/api/v1/patients?limit=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Data    []Patient `json:"data"`
		Total   int       `json:"total"`
		HasMore bool      `json:"has_more"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 4 || len(resp.Data) != 2 || !resp.HasMore {
		t.Errorf("envelope = total %d len %d has_more %v", resp.Total, len(resp.Data), resp.HasMore)
	}
}

func TestHandler_ListFiltered(t *testing.T) {
	_, e := newTestHandler()

	rec := doRequest(e, http.MethodGet, "/api/v1/patients?q=lakshmi&status=Active", "")
	var resp struct {
		Data []Patient `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].ID != "P002" {
		t.Errorf("got %+v, want just P002", resp.Data)
	}
}

func TestHandler_CreateValidationError(t *testing.T) {
	_, e := newTestHandler()

	rec := doRequest(e, http.MethodPost, "/api/v1/patients", `{"name":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandler_CreateAndGet(t *testing.T) {
	_, e := newTestHandler()

	body := `{"name":"Kiran Rao","age":45,"gender":"Male","phone":"9000000001",` +
		`"blood_group":"O+","country":"India","state":"Telangana",` +
		`"district":"Karimnagar","mandal":"Huzurabad","status":"Active"}`
	rec := doRequest(e, http.MethodPost, "/api/v1/patients", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	var created Patient
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = doRequest(e, http.MethodGet, "/api/v1/patients/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Errorf("get status = %d", rec.Code)
	}
}

func TestHandler_GetMissing(t *testing.T) {
	_, e := newTestHandler()

	rec := doRequest(e, http.MethodGet, "/api/v1/patients/P999", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHandler_DeleteThenGone(t *testing.T) {
	_, e := newTestHandler()

	rec := doRequest(e, http.MethodDelete, "/api/v1/patients/P003", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	rec = doRequest(e, http.MethodGet, "/api/v1/patients/P003", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status after delete = %d, want 404", rec.Code)
	}
}

func TestHandler_TableProjection(t *testing.T) {
	_, e := newTestHandler()

	rec := doRequest(e, http.MethodGet, "/api/v1/patients/table", "")
	var table struct {
		Headers []string `json:"headers"`
		Rows    []struct {
			ID      string   `json:"id"`
			Actions []string `json:"actions"`
		} `json:"rows"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &table); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(table.Rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(table.Rows))
	}
	if len(table.Rows[0].Actions) != 3 {
		t.Errorf("actions = %v", table.Rows[0].Actions)
	}
}

func TestHandler_Stats(t *testing.T) {
	_, e := newTestHandler()

	rec := doRequest(e, http.MethodGet, "/api/v1/patients/stats", "")
	var stats Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if stats.Total != 4 {
		t.Errorf("total = %d, want 4", stats.Total)
	}
}
