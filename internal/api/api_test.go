package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shaiso/iris-api/internal/dataset"
)

// newTestServer поднимает API поверх вшитого датасета в памяти.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	flowers, err := dataset.Load()
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	store := dataset.NewStore(flowers)

	handler := NewHandler(Config{
		Flowers: store,
		Species: store,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func get(t *testing.T, server *httptest.Server, path string) (int, []byte) {
	t.Helper()

	resp, err := http.Get(server.URL + path)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, body
}

func decodeError(t *testing.T, body []byte) ErrorDetail {
	t.Helper()

	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return er.Error
}

func decodeFlowers(t *testing.T, body []byte) []FlowerResponse {
	t.Helper()

	var lr struct {
		Data  []FlowerResponse `json:"data"`
		Total int              `json:"total"`
	}
	if err := json.Unmarshal(body, &lr); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if lr.Total != len(lr.Data) {
		t.Fatalf("total %d does not match data length %d", lr.Total, len(lr.Data))
	}
	return lr.Data
}

func decodeStat(t *testing.T, body []byte) StatResponse {
	t.Helper()

	var dr struct {
		Data StatResponse `json:"data"`
	}
	if err := json.Unmarshal(body, &dr); err != nil {
		t.Fatalf("decode stat response: %v", err)
	}
	return dr.Data
}

func TestListFlowers_All(t *testing.T) {
	server := newTestServer(t)

	status, body := get(t, server, "/api/v1/flowers")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	flowers := decodeFlowers(t, body)
	if len(flowers) != 150 {
		t.Fatalf("expected 150 records, got %d", len(flowers))
	}
	// Порядок вставки.
	for i, fl := range flowers {
		if fl.ID != i+1 {
			t.Fatalf("at %d: got id %d", i, fl.ID)
		}
	}
}

func TestListFlowers_FilterSpecies(t *testing.T) {
	server := newTestServer(t)

	status, body := get(t, server, "/api/v1/flowers?species=setosa")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	flowers := decodeFlowers(t, body)
	if len(flowers) != 50 {
		t.Fatalf("expected 50 records, got %d", len(flowers))
	}
	for _, fl := range flowers {
		if fl.Species != "setosa" {
			t.Errorf("record %d has species %q", fl.ID, fl.Species)
		}
	}
}

func TestListFlowers_RangeFilter(t *testing.T) {
	server := newTestServer(t)

	status, body := get(t, server, "/api/v1/flowers?min_sepal_length=6.0&max_sepal_length=6.5")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	flowers := decodeFlowers(t, body)
	if len(flowers) == 0 {
		t.Fatal("expected non-empty result")
	}
	for _, fl := range flowers {
		if fl.SepalLength < 6.0 || fl.SepalLength > 6.5 {
			t.Errorf("record %d has sepal_length %g outside [6.0, 6.5]", fl.ID, fl.SepalLength)
		}
	}
}

func TestListFlowers_SortAndLimit(t *testing.T) {
	server := newTestServer(t)

	status, body := get(t, server, "/api/v1/flowers?sort_by=sepal_length&sort_order=desc&limit=5")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	flowers := decodeFlowers(t, body)
	if len(flowers) != 5 {
		t.Fatalf("expected 5 records, got %d", len(flowers))
	}
	for i := 1; i < len(flowers); i++ {
		if flowers[i].SepalLength > flowers[i-1].SepalLength {
			t.Errorf("not sorted desc at %d: %g > %g", i, flowers[i].SepalLength, flowers[i-1].SepalLength)
		}
	}
	// Самая длинная запись в датасете.
	if flowers[0].SepalLength != 7.9 {
		t.Errorf("expected max sepal_length 7.9 first, got %g", flowers[0].SepalLength)
	}
}

func TestListFlowers_AbsentSpecies(t *testing.T) {
	server := newTestServer(t)

	status, body := get(t, server, "/api/v1/flowers?species=tulip")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if flowers := decodeFlowers(t, body); len(flowers) != 0 {
		t.Fatalf("expected empty result, got %d records", len(flowers))
	}
}

func TestListFlowers_Errors(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name     string
		path     string
		wantCode ErrorCode
	}{
		{name: "unknown filter attribute", path: "/api/v1/flowers?min_wing_span=1", wantCode: ErrCodeInvalidFilter},
		{name: "min exceeds max", path: "/api/v1/flowers?min_sepal_length=6&max_sepal_length=5", wantCode: ErrCodeInvalidFilter},
		{name: "bound not a number", path: "/api/v1/flowers?min_sepal_length=abc", wantCode: ErrCodeInvalidFilter},
		{name: "bad sort field", path: "/api/v1/flowers?sort_by=wing_span", wantCode: ErrCodeInvalidFilter},
		{name: "bad sort order", path: "/api/v1/flowers?sort_by=sepal_length&sort_order=up", wantCode: ErrCodeInvalidFilter},
		{name: "bad limit", path: "/api/v1/flowers?limit=-1", wantCode: ErrCodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, server, tt.path)
			if status != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", status)
			}
			if detail := decodeError(t, body); detail.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s (%s)", tt.wantCode, detail.Code, detail.Message)
			}
		})
	}
}

func TestGetFlower(t *testing.T) {
	server := newTestServer(t)

	status, body := get(t, server, "/api/v1/flowers/1")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	var dr struct {
		Data FlowerResponse `json:"data"`
	}
	if err := json.Unmarshal(body, &dr); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if dr.Data.ID != 1 || dr.Data.Species != "setosa" {
		t.Errorf("unexpected record: %+v", dr.Data)
	}
	if dr.Data.SepalArea != dr.Data.SepalLength*dr.Data.SepalWidth {
		t.Errorf("derived attribute missing: %+v", dr.Data)
	}
}

func TestGetFlower_NotFound(t *testing.T) {
	server := newTestServer(t)

	status, body := get(t, server, "/api/v1/flowers/9999")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if detail := decodeError(t, body); detail.Code != ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", detail.Code)
	}
}

func TestGetStat_SetosaPetalLengthMean(t *testing.T) {
	server := newTestServer(t)

	status, body := get(t, server, "/api/v1/flowers/stats?attribute=petal_length&stat=mean&species=setosa")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	stat := decodeStat(t, body)
	if stat.Count != 50 {
		t.Errorf("expected count 50, got %d", stat.Count)
	}
	if math.Abs(stat.Value-1.464) > 1e-2 {
		t.Errorf("expected ~1.464, got %g", stat.Value)
	}
}

func TestGetStat_QuantileBounds(t *testing.T) {
	server := newTestServer(t)

	_, minBody := get(t, server, "/api/v1/flowers/stats?attribute=sepal_width&stat=min")
	_, q0Body := get(t, server, "/api/v1/flowers/stats?attribute=sepal_width&stat=quantile&p=0")

	if min, q0 := decodeStat(t, minBody).Value, decodeStat(t, q0Body).Value; min != q0 {
		t.Errorf("quantile(0) = %g, min = %g", q0, min)
	}

	_, maxBody := get(t, server, "/api/v1/flowers/stats?attribute=sepal_width&stat=max")
	_, q1Body := get(t, server, "/api/v1/flowers/stats?attribute=sepal_width&stat=quantile&p=1")

	if max, q1 := decodeStat(t, maxBody).Value, decodeStat(t, q1Body).Value; max != q1 {
		t.Errorf("quantile(1) = %g, max = %g", q1, max)
	}
}

func TestGetStat_Errors(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCode   ErrorCode
	}{
		{
			name:       "quantile out of range",
			path:       "/api/v1/flowers/stats?attribute=petal_length&stat=quantile&p=1.5",
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeInvalidArgument,
		},
		{
			name:       "unknown stat",
			path:       "/api/v1/flowers/stats?attribute=petal_length&stat=variance",
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeInvalidArgument,
		},
		{
			name:       "unknown attribute",
			path:       "/api/v1/flowers/stats?attribute=wing_span&stat=mean",
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeUnknownAttribute,
		},
		{
			name:       "missing attribute",
			path:       "/api/v1/flowers/stats?stat=mean",
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeInvalidArgument,
		},
		{
			name:       "missing p for quantile",
			path:       "/api/v1/flowers/stats?attribute=petal_length&stat=quantile",
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrCodeInvalidArgument,
		},
		{
			name:       "empty population",
			path:       "/api/v1/flowers/stats?attribute=petal_length&stat=mean&species=tulip",
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   ErrCodeEmptyPopulation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, server, tt.path)
			if status != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, status)
			}
			if detail := decodeError(t, body); detail.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s (%s)", tt.wantCode, detail.Code, detail.Message)
			}
		})
	}
}

func TestListSpecies(t *testing.T) {
	server := newTestServer(t)

	status, body := get(t, server, "/api/v1/species")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	var lr struct {
		Data  []string `json:"data"`
		Total int      `json:"total"`
	}
	if err := json.Unmarshal(body, &lr); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	want := []string{"setosa", "versicolor", "virginica"}
	if lr.Total != len(want) || len(lr.Data) != len(want) {
		t.Fatalf("expected %v, got %v", want, lr.Data)
	}
	for i := range want {
		if lr.Data[i] != want[i] {
			t.Errorf("at %d: got %q, want %q", i, lr.Data[i], want[i])
		}
	}
}

func TestGetSpeciesSummary(t *testing.T) {
	server := newTestServer(t)

	status, body := get(t, server, "/api/v1/species/setosa/summary")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	var dr struct {
		Data struct {
			Species      string `json:"species"`
			TotalRecords int    `json:"total_records"`
			Measurements map[string]struct {
				Min    float64 `json:"min"`
				Max    float64 `json:"max"`
				Mean   float64 `json:"mean"`
				Median float64 `json:"median"`
				Std    float64 `json:"std"`
			} `json:"measurements"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &dr); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if dr.Data.Species != "setosa" || dr.Data.TotalRecords != 50 {
		t.Errorf("unexpected summary: %+v", dr.Data)
	}
	m, ok := dr.Data.Measurements["petal_length"]
	if !ok {
		t.Fatal("missing petal_length summary")
	}
	if !(m.Min <= m.Median && m.Median <= m.Max) || !(m.Min <= m.Mean && m.Mean <= m.Max) {
		t.Errorf("ordering invariant violated: %+v", m)
	}
}

func TestGetSpeciesSummary_NotFound(t *testing.T) {
	server := newTestServer(t)

	status, body := get(t, server, "/api/v1/species/tulip/summary")
	if status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
	if detail := decodeError(t, body); detail.Code != ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", detail.Code)
	}
}

func TestGetSummary(t *testing.T) {
	server := newTestServer(t)

	status, body := get(t, server, "/api/v1/flowers/summary")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	var dr struct {
		Data struct {
			TotalRecords        int            `json:"total_records"`
			SpeciesDistribution map[string]int `json:"species_distribution"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &dr); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if dr.Data.TotalRecords != 150 {
		t.Errorf("expected 150 records, got %d", dr.Data.TotalRecords)
	}
	for _, s := range []string{"setosa", "versicolor", "virginica"} {
		if dr.Data.SpeciesDistribution[s] != 50 {
			t.Errorf("species %s: expected 50, got %d", s, dr.Data.SpeciesDistribution[s])
		}
	}
}

func TestIdempotence(t *testing.T) {
	server := newTestServer(t)

	paths := []string{
		"/api/v1/flowers?species=versicolor&min_petal_length=4.0&sort_by=petal_width",
		"/api/v1/flowers/stats?attribute=sepal_area&stat=quantile&p=0.75&species=virginica",
		"/api/v1/flowers/summary",
		"/api/v1/species",
	}

	for _, path := range paths {
		status1, body1 := get(t, server, path)
		status2, body2 := get(t, server, path)
		if status1 != status2 {
			t.Errorf("%s: status differs: %d vs %d", path, status1, status2)
		}
		if string(body1) != string(body2) {
			t.Errorf("%s: bodies are not byte-identical", path)
		}
	}
}

func TestGetOpenAPI(t *testing.T) {
	server := newTestServer(t)

	status, body := get(t, server, "/api/v1/openapi.json")
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	var doc struct {
		OpenAPI string         `json:"openapi"`
		Paths   map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("decode document: %v", err)
	}
	if doc.OpenAPI == "" {
		t.Error("missing openapi version")
	}
	for _, path := range []string{"/api/v1/flowers", "/api/v1/flowers/stats", "/api/v1/species"} {
		if _, ok := doc.Paths[path]; !ok {
			t.Errorf("document missing path %s", path)
		}
	}
}
