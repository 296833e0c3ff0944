package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"practice-pricing/adapters/hclfile"
	"practice-pricing/core/catalog"
	"practice-pricing/core/pricing"
)

const testCatalog = `
component "BOOKKEEPING" {
  name                = "Bookkeeping"
  pricing_model       = "both"
  supports_complexity = true
  base_price          = 20

  rule {
    type  = "turnover_band"
    min   = 0
    price = 85
  }

  rule {
    type  = "transaction_band"
    price = 0.30
  }
}

component "COSEC" {
  name          = "Company Secretarial"
  pricing_model = "fixed"
  fixed_price   = 15
}
`

func testServer(t *testing.T) *Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.hcl")
	if err := os.WriteFile(path, []byte(testCatalog), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	cat, err := hclfile.Load(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	engine := pricing.New(cat, cat)
	return NewServer(engine, cat, cat, "test", zap.NewNop())
}

func doJSON(t *testing.T, srv *Server, method, path, tenant string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if tenant != "" {
		req.Header.Set("X-Tenant-ID", tenant)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestQuoteEndpoint(t *testing.T) {
	srv := testServer(t)
	body := map[string]interface{}{
		"turnover": "90k-149k",
		"industry": "standard",
		"services": []map[string]interface{}{
			{"component_code": "BOOKKEEPING", "books": map[string]string{"complexity": "average"}},
			{"component_code": "COSEC"},
		},
	}

	rec := doJSON(t, srv, http.MethodPost, "/v1/pricing/quote", "default", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected a quote id")
	}
	if resp.ModelA == nil || len(resp.ModelA.Services) != 2 {
		t.Fatalf("unexpected model A %+v", resp.ModelA)
	}
	if resp.ModelB != nil {
		t.Error("expected no model B without transaction data")
	}
	// 85 + 15, under the volume discount threshold
	if resp.ModelA.Total.String() != "100" {
		t.Errorf("total = %s, want 100", resp.ModelA.Total)
	}
}

func TestQuoteEndpointMissingTenant(t *testing.T) {
	srv := testServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/v1/pricing/quote", "", map[string]interface{}{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestQuoteEndpointUnknownComponent(t *testing.T) {
	srv := testServer(t)
	body := map[string]interface{}{
		"turnover": "90k-149k",
		"industry": "standard",
		"services": []map[string]string{{"component_code": "NOPE"}},
	}

	rec := doJSON(t, srv, http.MethodPost, "/v1/pricing/quote", "default", body)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Error.Type != "NOT_FOUND" {
		t.Errorf("error type = %s, want NOT_FOUND", resp.Error.Type)
	}
}

func TestQuoteEndpointBadBody(t *testing.T) {
	srv := testServer(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/pricing/quote", bytes.NewBufferString("{"))
	req.Header.Set("X-Tenant-ID", "default")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestEstimateEndpoint(t *testing.T) {
	srv := testServer(t)
	rec := doJSON(t, srv, http.MethodPost, "/v1/pricing/estimate-transactions", "", EstimateRequest{
		Turnover: "90k-149k", Industry: "standard", VatRegistered: true,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp EstimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Estimated != 66 {
		t.Errorf("estimated = %d, want 66", resp.Estimated)
	}

	rec = doJSON(t, srv, http.MethodPost, "/v1/pricing/estimate-transactions", "", EstimateRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing turnover: status = %d, want 400", rec.Code)
	}
}

func TestComponentsEndpoint(t *testing.T) {
	srv := testServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/v1/pricing/components", "default", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp ComponentsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Components) != 2 {
		t.Errorf("components = %d, want 2", len(resp.Components))
	}

	// unknown tenant sees an empty catalog, not an error
	rec = doJSON(t, srv, http.MethodGet, "/v1/pricing/components", "other", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	resp = ComponentsResponse{}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Components) != 0 {
		t.Errorf("components = %d, want 0", len(resp.Components))
	}
}

func TestIntegrityEndpoint(t *testing.T) {
	srv := testServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/v1/pricing/integrity", "default", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var report catalog.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if !report.Healthy {
		t.Errorf("expected a healthy catalog, issues %+v", report.Issues)
	}
}

func TestHealthAndVersion(t *testing.T) {
	srv := testServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodGet, "/version", "", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("version status = %d", rec.Code)
	}
	var v map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode version: %v", err)
	}
	if v["version"] != "test" {
		t.Errorf("version = %q, want test", v["version"])
	}
}
