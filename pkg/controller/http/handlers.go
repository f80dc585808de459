package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/coldemails/sales-hub/pkg/domain/types"
	"github.com/coldemails/sales-hub/pkg/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
)

// apiHandler holds the use cases behind the REST surface
type apiHandler struct {
	provisioning *usecase.Provisioning
	dashboard    *usecase.Dashboard
}

// operationResponse wraps a completed report for the console
type operationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	*model.OperationReport
}

func (h *apiHandler) handleOnboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.OnboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		writeError(ctx, w, err, http.StatusBadRequest)
		return
	}

	report, err := h.provisioning.Onboard(ctx, &req)
	if err != nil {
		writeOperationError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, &operationResponse{
		Success:         true,
		Message:         "Closer onboarding completed",
		OperationReport: report,
	})
}

func (h *apiHandler) handleOffboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.CRMUserID(chi.URLParam(r, "crmUserID"))

	report, err := h.provisioning.Offboard(ctx, id)
	if err != nil {
		writeOperationError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, &operationResponse{
		Success:         true,
		Message:         "Closer " + report.TargetName + " offboarding completed",
		OperationReport: report,
	})
}

func (h *apiHandler) handleListClosers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	closers, err := h.dashboard.ListClosers(ctx)
	if err != nil {
		writeError(ctx, w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string]any{
		"closers": closers,
		"count":   len(closers),
	})
}

func (h *apiHandler) handleListNumbers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	numbers, err := h.dashboard.ListNumbers(ctx)
	if err != nil {
		writeError(ctx, w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string]any{
		"numbers": numbers,
		"count":   len(numbers),
	})
}

func (h *apiHandler) handleListCalls(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	from, err := parseTimeParam(r, "min_start_time", time.Now())
	if err != nil {
		writeError(ctx, w, err, http.StatusBadRequest)
		return
	}
	to, err := parseTimeParam(r, "max_start_time", from.AddDate(0, 0, 7))
	if err != nil {
		writeError(ctx, w, err, http.StatusBadRequest)
		return
	}

	calls, err := h.dashboard.ListCalls(ctx, from, to)
	if err != nil {
		writeError(ctx, w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string]any{
		"calls": calls,
		"count": len(calls),
	})
}

func (h *apiHandler) handleListCallsToday(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	calls, err := h.dashboard.ListCallsToday(ctx)
	if err != nil {
		writeError(ctx, w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string]any{
		"calls": calls,
		"count": len(calls),
	})
}

func (h *apiHandler) handleIntegrationStatuses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	statuses := h.dashboard.IntegrationStatuses(ctx)
	writeJSON(ctx, w, http.StatusOK, map[string]any{
		"integrations": statuses,
	})
}

func (h *apiHandler) handleListOperations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(ctx, w, goerr.New("invalid limit", goerr.V("limit", raw)), http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	records, err := h.dashboard.ListOperations(ctx, limit)
	if err != nil {
		writeError(ctx, w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(ctx, w, http.StatusOK, map[string]any{
		"operations": records,
		"count":      len(records),
	})
}

func (h *apiHandler) handleGetOperation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.OperationID(chi.URLParam(r, "operationID"))

	record, err := h.dashboard.GetOperation(ctx, id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, model.ErrOperationNotFound) {
			status = http.StatusNotFound
		}
		writeError(ctx, w, err, status)
		return
	}
	writeJSON(ctx, w, http.StatusOK, record)
}

func parseTimeParam(r *http.Request, name string, fallback time.Time) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "invalid time parameter",
			goerr.V("param", name), goerr.V("value", raw))
	}
	return t, nil
}
