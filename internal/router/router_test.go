package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"cat-shelter-admin/docs"
	"cat-shelter-admin/internal/config"
	"cat-shelter-admin/internal/middleware"
	"cat-shelter-admin/internal/router"

	"github.com/go-chi/chi/v5"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	return newServerWith(t, router.Options{AuthVerifier: nil})
}

func newServerWith(t *testing.T, opts router.Options) *httptest.Server {
	t.Helper()
	h, err := router.NewRouter(context.Background(), opts)
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_VaccinationReminder(t *testing.T) {
	ts := newServer(t)
	staffID := "staff-1"

	// 1) Alta de un gato
	animalID := createAnimal(t, ts.URL, staffID, map[string]any{
		"name":         "Minou",
		"sex":          "female",
		"entry_date":   "2024-01-03",
		"entry_reason": "Abandon sur la voie publique",
	})

	// 2) El catálogo sembrado trae Typhus activo
	typhusID := ""
	{
		st, body := doReq(t, ts.URL, "GET", "/care-types?kind=vaccination&active=true", staffID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list care types, got %d body=%s", st, string(body))
		}
		var types []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		}
		_ = json.Unmarshal(body, &types)
		for _, ct := range types {
			if ct.Name == "Typhus" {
				typhusID = ct.ID
			}
		}
		if typhusID == "" {
			t.Fatalf("seeded catalog missing Typhus: %s", string(body))
		}
	}

	// 3) Vacuna de hace casi un año => recall dentro de ~10 días
	lastShot := time.Now().UTC().AddDate(-1, 0, 10).Format("2006-01-02")
	{
		st, body := doReq(t, ts.URL, "POST", "/animals/"+animalID+"/care", staffID, map[string]any{
			"kind":    "vaccination",
			"type_id": typhusID,
			"date":    lastShot,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 record vaccination, got %d body=%s", st, string(body))
		}
	}

	// 4) Recordatorios
	{
		st, body := doReq(t, ts.URL, "GET", "/reminders?kind=vaccination", staffID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 reminders, got %d body=%s", st, string(body))
		}
		var items []struct {
			AnimalID string `json:"animal_id"`
			TypeName string `json:"type_name"`
			Status   string `json:"status"`
			DaysLeft int    `json:"days_left"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 due item, got %d body=%s", len(items), string(body))
		}
		if items[0].AnimalID != animalID || items[0].Status != "soon" || items[0].TypeName != "Typhus" {
			t.Fatalf("unexpected due item: %+v", items[0])
		}
		if items[0].DaysLeft < 0 || items[0].DaysLeft > 30 {
			t.Fatalf("days_left out of horizon: %d", items[0].DaysLeft)
		}
	}

	// 5) Horizonte 0 => nada "soon"
	{
		st, body := doReq(t, ts.URL, "GET", "/reminders?kind=vaccination&horizon=0", staffID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 reminders, got %d body=%s", st, string(body))
		}
		if string(bytes.TrimSpace(body)) != "[]" {
			t.Fatalf("expected no due items, got %s", string(body))
		}
	}

	// 6) Dashboard
	{
		st, body := doReq(t, ts.URL, "GET", "/dashboard", staffID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 dashboard, got %d body=%s", st, string(body))
		}
		var resp struct {
			Animals     int `json:"total_animals"`
			Residents   int `json:"residents"`
			ActiveStaff int `json:"active_staff"`
			Reminders   []struct {
				Label string `json:"label"`
				Late  int    `json:"late"`
				Soon  int    `json:"soon"`
			} `json:"reminders"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Animals != 1 || resp.Residents != 1 {
			t.Fatalf("unexpected totals: %s", string(body))
		}
		if resp.ActiveStaff != 2 {
			t.Fatalf("expected seeded staff (2), got %d", resp.ActiveStaff)
		}
		found := false
		for _, c := range resp.Reminders {
			if c.Label == "Typhus" {
				found = c.Soon == 1 && c.Late == 0
			}
		}
		if !found {
			t.Fatalf("expected Typhus counter with 1 soon: %s", string(body))
		}
	}

	// 7) Informe de enero 2024
	{
		st, body := doReq(t, ts.URL, "GET", "/reports/activity?year=2024&month=1&other_species=2", staffID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 activity report, got %d body=%s", st, string(body))
		}
		var resp struct {
			Entries struct {
				Abandonment int `json:"abandonment"`
			} `json:"entries"`
			EntriesTotal int `json:"entries_total"`
			CountEnd     int `json:"count_end"`
			DisplayEnd   int `json:"display_end"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.EntriesTotal != 1 || resp.Entries.Abandonment != 1 {
			t.Fatalf("unexpected entries: %s", string(body))
		}
		if resp.DisplayEnd != resp.CountEnd+2 {
			t.Fatalf("display_end should add other species: %s", string(body))
		}
	}
}

func TestHTTP_ExplicitZeroHorizons(t *testing.T) {
	ts := newServerWith(t, router.Options{Horizons: &config.Horizons{}})
	staffID := "staff-1"

	animalID := createAnimal(t, ts.URL, staffID, map[string]any{
		"name":         "Caramel",
		"entry_date":   "2024-01-03",
		"entry_reason": "Trouvé",
	})
	st, body := doReq(t, ts.URL, "GET", "/care-types?kind=deworming&active=true", staffID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list care types, got %d body=%s", st, string(body))
	}
	var types []struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &types)
	if len(types) == 0 {
		t.Fatalf("seeded catalog has no deworming type: %s", string(body))
	}

	// desparasitación de hace 55 días => vence en 5
	lastDose := time.Now().UTC().AddDate(0, 0, -55).Format("2006-01-02")
	st, body = doReq(t, ts.URL, "POST", "/animals/"+animalID+"/care", staffID, map[string]any{
		"kind":    "deworming",
		"type_id": types[0].ID,
		"date":    lastDose,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 record deworming, got %d body=%s", st, string(body))
	}

	// sin ?horizon se usa el configurado: 0 días, nada "soon"
	st, body = doReq(t, ts.URL, "GET", "/reminders?kind=deworming", staffID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 reminders, got %d body=%s", st, string(body))
	}
	if string(bytes.TrimSpace(body)) != "[]" {
		t.Fatalf("zero horizon replaced by defaults, got %s", string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/reminders?kind=deworming&horizon=7", staffID, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 reminders, got %d body=%s", st, string(body))
	}
	var items []struct {
		Status string `json:"status"`
	}
	_ = json.Unmarshal(body, &items)
	if len(items) != 1 || items[0].Status != "soon" {
		t.Fatalf("expected one soon item with explicit horizon, got %s", string(body))
	}
}

func TestHTTP_RequiresClaims(t *testing.T) {
	ts := newServer(t)

	for _, path := range []string{"/animals", "/dashboard", "/reminders?kind=vaccination", "/staff"} {
		st, _ := doReq(t, ts.URL, "GET", path, "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("GET %s: expected 401 without claims, got %d", path, st)
		}
	}

	// Rutas públicas
	for _, path := range []string{"/health", "/metrics"} {
		st, _ := doReq(t, ts.URL, "GET", path, "", nil)
		if st != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, st)
		}
	}
}

func TestHTTP_Reminders_RejectsWeightKind(t *testing.T) {
	ts := newServer(t)

	st, _ := doReq(t, ts.URL, "GET", "/reminders?kind=weight", "staff-1", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for weight reminders, got %d", st)
	}
}

// Cada ruta de la API tiene su operación en /swagger y viceversa.
func TestSwaggerDoc_MatchesRegisteredRoutes(t *testing.T) {
	h, err := router.NewRouter(context.Background(), router.Options{})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	routes, ok := h.(chi.Routes)
	if !ok {
		t.Fatalf("router is not a chi.Routes: %T", h)
	}

	registered := map[string]bool{}
	err = chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if len(route) > 1 {
			route = strings.TrimSuffix(route, "/")
		}
		switch {
		case route == "/health", route == "/metrics", strings.HasPrefix(route, "/swagger"):
			return nil
		}
		registered[strings.ToLower(method)+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("walk routes: %v", err)
	}

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(docs.SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("swagger doc is not valid json: %v", err)
	}
	documented := map[string]bool{}
	for path, ops := range doc.Paths {
		for method := range ops {
			documented[method+" "+path] = true
		}
	}

	var missing, stale []string
	for op := range registered {
		if !documented[op] {
			missing = append(missing, op)
		}
	}
	for op := range documented {
		if !registered[op] {
			stale = append(stale, op)
		}
	}
	sort.Strings(missing)
	sort.Strings(stale)
	if len(missing) > 0 || len(stale) > 0 {
		t.Fatalf("swagger out of sync\nundocumented: %v\nnot routed: %v", missing, stale)
	}
	if len(registered) != 30 {
		t.Fatalf("expected 30 API operations, got %d", len(registered))
	}
}

func createAnimal(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/animals", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create animal, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create animal: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set(middleware.DebugUserHeader, debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
