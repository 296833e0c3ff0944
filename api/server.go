// Package api - Thin HTTP layer over the quoting engine
// The API is only responsible for input ingestion, engine invocation
// and output serialization. It never performs pricing logic, and it
// does not enforce tenancy beyond requiring the tenant header; auth is
// the surrounding platform's concern.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"practice-pricing/core/catalog"
	"practice-pricing/core/estimator"
	"practice-pricing/core/pricing"
	"practice-pricing/core/types"
	errs "practice-pricing/internal/errors"
)

// tenantHeader carries the caller's tenant; set by the auth gateway
const tenantHeader = "X-Tenant-ID"

// Server is the HTTP API server
type Server struct {
	engine  *pricing.Engine
	catalog pricing.CatalogProvider
	source  catalog.Source
	router  chi.Router
	version string
	log     *zap.Logger
}

// NewServer wires the engine and catalog providers into a router
func NewServer(engine *pricing.Engine, catalogProvider pricing.CatalogProvider, source catalog.Source, version string, log *zap.Logger) *Server {
	s := &Server{
		engine:  engine,
		catalog: catalogProvider,
		source:  source,
		version: version,
		log:     log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)

	r.Route("/v1/pricing", func(r chi.Router) {
		r.Post("/quote", s.handleQuote)
		r.Post("/estimate-transactions", s.handleEstimate)
		r.Get("/components", s.handleComponents)
		r.Get("/integrity", s.handleIntegrity)
	})

	s.router = r
	return s
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := s.tenant(w, r)
	if !ok {
		return
	}

	var input types.PricingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeError(w, errs.Input("invalid request body: "+err.Error()))
		return
	}

	quote, err := s.engine.CalculateQuote(r.Context(), tenantID, input)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, QuoteResponse{
		ID:             uuid.NewString(),
		ModelA:         quote.ModelA,
		ModelB:         quote.ModelB,
		Recommendation: quote.Recommendation,
	})
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errs.Input("invalid request body: "+err.Error()))
		return
	}
	if req.Turnover == "" {
		s.writeError(w, errs.Input("turnover band is required"))
		return
	}

	estimated := estimator.MonthlyTransactions(req.Turnover, req.Industry, req.VatRegistered)
	s.writeJSON(w, http.StatusOK, EstimateResponse{Estimated: estimated})
}

func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := s.tenant(w, r)
	if !ok {
		return
	}

	components, err := s.catalog.ActiveComponents(r.Context(), tenantID)
	if err != nil {
		s.writeError(w, errs.Storage("catalog listing failed", err))
		return
	}
	if components == nil {
		components = []types.ServiceComponent{}
	}
	s.writeJSON(w, http.StatusOK, ComponentsResponse{Components: components})
}

func (s *Server) handleIntegrity(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := s.tenant(w, r)
	if !ok {
		return
	}

	report, err := catalog.ValidateSource(r.Context(), s.source, tenantID)
	if err != nil {
		s.writeError(w, errs.Storage("integrity validation failed", err))
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

func (s *Server) tenant(w http.ResponseWriter, r *http.Request) (string, bool) {
	tenantID := r.Header.Get(tenantHeader)
	if tenantID == "" {
		s.writeError(w, errs.Input("missing "+tenantHeader+" header"))
		return "", false
	}
	return tenantID, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response encoding failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	errType := errs.TypeInternal
	message := err.Error()

	if domainErr, ok := err.(*errs.Error); ok {
		errType = domainErr.Type
		message = domainErr.Message
		switch domainErr.Type {
		case errs.TypeNotFound, errs.TypeNoPricingRule:
			status = http.StatusNotFound
		case errs.TypeInput, errs.TypeInvalidTurnover:
			status = http.StatusBadRequest
		case errs.TypeRuleConflict:
			status = http.StatusConflict
		}
	}

	if status == http.StatusInternalServerError {
		s.log.Error("request failed", zap.Error(err))
	}

	s.writeJSON(w, status, ErrorResponse{Error: ErrorBody{
		Type:    string(errType),
		Message: message,
	}})
}
