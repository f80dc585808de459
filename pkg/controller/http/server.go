package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/coldemails/sales-hub/pkg/domain/types"
	"github.com/coldemails/sales-hub/pkg/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates the console HTTP server
func NewServer(ctx context.Context, addr string, provisioningUC *usecase.Provisioning, dashboardUC *usecase.Dashboard) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	handler := &apiHandler{
		provisioning: provisioningUC,
		dashboard:    dashboardUC,
	}

	router.Get("/health", handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Route("/closers", func(r chi.Router) {
			r.Get("/", handler.handleListClosers)
			r.Post("/onboard", handler.handleOnboard)
			r.Delete("/offboard/{crmUserID}", handler.handleOffboard)
		})
		r.Get("/numbers", handler.handleListNumbers)
		r.Route("/calls", func(r chi.Router) {
			r.Get("/", handler.handleListCalls)
			r.Get("/today", handler.handleListCallsToday)
		})
		r.Get("/status/integrations", handler.handleIntegrationStatuses)
		r.Route("/operations", func(r chi.Router) {
			r.Get("/", handler.handleListOperations)
			r.Get("/{operationID}", handler.handleGetOperation)
		})
	})

	router.Get("/", handleHome)

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}

// Router exposes the handler tree for tests
func (s *Server) Router() chi.Router {
	return s.router
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "sales-hub",
	})
}

func handleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"service": "sales-hub",
		"health":  "/health",
		"api":     "/api",
	})
}

// writeJSON encodes the response body with a status code
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}

// writeOperationError maps domain errors to status codes: a safety
// gate rejection keeps its reason code, a duplicate run conflicts,
// anything else is a server error
func writeOperationError(ctx context.Context, w http.ResponseWriter, err error) {
	var rejection *model.Rejection
	if errors.As(err, &rejection) {
		writeJSON(ctx, w, rejectionStatus(rejection.Code), rejection)
		return
	}
	if errors.Is(err, model.ErrOperationInProgress) {
		writeError(ctx, w, err, http.StatusConflict)
		return
	}
	writeError(ctx, w, err, http.StatusInternalServerError)
}

func rejectionStatus(code types.RejectionCode) int {
	switch code {
	case types.RejectInvalidIdentifier:
		return http.StatusBadRequest
	case types.RejectNotFound:
		return http.StatusNotFound
	case types.RejectNotAuthorized:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

// writeError writes an error response
func writeError(ctx context.Context, w http.ResponseWriter, err error, status int) {
	ctxlog.From(ctx).Error("HTTP error", "error", err, "status", status)

	var message string
	if goErr := goerr.Unwrap(err); goErr != nil {
		message = goErr.Error()
	} else {
		message = err.Error()
	}

	writeJSON(ctx, w, status, map[string]string{
		"error": message,
	})
}
