package httpapi

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"policerecords/internal/config"
	"policerecords/internal/files"
	"policerecords/internal/logging"
	"policerecords/internal/models"
	"policerecords/internal/storage/memstore"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()

	sl := slog.New(slog.NewTextHandler(os.Stderr, nil))
	api := New(memstore.New(), files.NewPresigner(cfg), logging.NewSlogLogger(sl))

	srv := httptest.NewServer(api.NewRouter())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestCaseLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/cases", map[string]any{
		"title": "Stolen bicycle",
		"type":  "Theft",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	created := decodeBody[models.Case](t, resp)
	if created.ID == "" || created.CaseNumber == "" {
		t.Fatalf("create response incomplete: %+v", created)
	}
	if created.Status != models.CaseStatusOpen {
		t.Fatalf("default status = %q", created.Status)
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/cases/"+created.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get status = %d", resp.StatusCode)
	}
	got := decodeBody[models.Case](t, resp)
	if got.Title != "Stolen bicycle" {
		t.Fatalf("title = %q", got.Title)
	}

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/cases/"+created.ID, map[string]any{
		"status": models.CaseStatusClosed,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d", resp.StatusCode)
	}
	updated := decodeBody[models.Case](t, resp)
	if updated.Status != models.CaseStatusClosed {
		t.Fatalf("status = %q", updated.Status)
	}
	if updated.Title != "Stolen bicycle" {
		t.Fatalf("merge lost title: %q", updated.Title)
	}

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/cases/"+created.ID, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/cases/"+created.ID, nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete status = %d", resp.StatusCode)
	}
}

func TestErrorStatuses(t *testing.T) {
	srv := newTestServer(t)

	// malformed id
	resp := doJSON(t, http.MethodGet, srv.URL+"/api/cases/abc", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid id status = %d", resp.StatusCode)
	}

	// missing record
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/cases/999", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing record status = %d", resp.StatusCode)
	}

	// missing required field
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/cases", map[string]any{"type": "Theft"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("validation status = %d", resp.StatusCode)
	}

	// duplicate username conflicts with the seeded admin
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/users", map[string]any{
		"username": "admin",
		"email":    "someone@police.gov",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("duplicate status = %d", resp.StatusCode)
	}

	// unknown body field
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/cases", map[string]any{
		"title": "x", "bogus": true,
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown field status = %d", resp.StatusCode)
	}
}

func TestUserPasswordNeverSerialized(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/users", map[string]any{
		"username": "jsmith",
		"email":    "jsmith@police.gov",
		"password": "hunter2",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d", resp.StatusCode)
	}
	defer resp.Body.Close()

	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := raw["password"]; ok {
		t.Fatalf("password leaked in response")
	}
}

func TestPasswordResetFlow(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/auth/forgot-password", map[string]any{
		"email": "admin@police.gov",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("forgot status = %d", resp.StatusCode)
	}
	issued := decodeBody[map[string]string](t, resp)
	token := issued["token"]
	if token == "" {
		t.Fatalf("no token issued")
	}

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/auth/reset-password", map[string]any{
		"token":    token,
		"password": "newpass123",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("reset status = %d", resp.StatusCode)
	}

	// the token is single-use
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/auth/reset-password", map[string]any{
		"token":    token,
		"password": "again",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("reuse status = %d", resp.StatusCode)
	}

	// unknown email
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/auth/forgot-password", map[string]any{
		"email": "ghost@police.gov",
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown email status = %d", resp.StatusCode)
	}
}

func TestGeofileListingFilters(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/geofiles?accessLevel=department&tags=routes", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	got := decodeBody[[]models.Geofile](t, resp)
	if len(got) != 1 || got[0].Filename != "patrol_routes_downtown.kml" {
		t.Fatalf("filtered list: %d records", len(got))
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/geofiles?dateFrom=not-a-date", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad date status = %d", resp.StatusCode)
	}
}

func TestGeofileLocationSearch(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/geofiles/search/location?lat=37.7749&lng=-122.4194&radius=1000", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("search status = %d", resp.StatusCode)
	}
	got := decodeBody[[]models.Geofile](t, resp)
	if len(got) != 2 {
		t.Fatalf("radius 1000m: %d records, want 2", len(got))
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/geofiles/search/location?lat=37.7749", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing lng status = %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/geofiles/search/location?lat=37.7749&lng=-122.4194&radius=-5", nil)
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("negative radius status = %d", resp.StatusCode)
	}
}

func TestGeofileTagEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/geofiles/2/tags", map[string]any{
		"tags": []string{"reviewed"},
	})
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("tags status = %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/geofiles/2", nil)
	got := decodeBody[models.Geofile](t, resp)
	if !strings.Contains(got.Tags, "reviewed") {
		t.Fatalf("tags = %q", got.Tags)
	}
}

func TestVehicleStatusEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/vehicles/2/status", map[string]any{
		"status": models.VehicleStatusOnPatrol,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status update = %d", resp.StatusCode)
	}
	got := decodeBody[models.PoliceVehicle](t, resp)
	if got.Status != models.VehicleStatusOnPatrol {
		t.Fatalf("status = %q", got.Status)
	}

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/vehicles/2/status", map[string]any{})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("empty status = %d", resp.StatusCode)
	}
}

func TestVehicleLookupByPlate(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/vehicles/lookup/POL-001", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("lookup status = %d", resp.StatusCode)
	}
	got := decodeBody[models.PoliceVehicle](t, resp)
	if got.VehicleID != "PATROL-001" {
		t.Fatalf("vehicleId = %q", got.VehicleID)
	}
}
