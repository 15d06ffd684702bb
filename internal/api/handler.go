package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Marym-Saleh/jrp-planner/internal/report"
	"github.com/Marym-Saleh/jrp-planner/internal/solver"
	"github.com/Marym-Saleh/jrp-planner/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires solver, storage, and report dependencies into HTTP handlers.
type Handler struct {
	solver  solver.Solver
	storage storage.Storage
	palette report.Palette

	clock func() time.Time

	mu                sync.RWMutex
	instanceUpdatedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithPalette overrides the default report palette.
func WithPalette(palette report.Palette) HandlerOption {
	return func(h *Handler) {
		h.palette = palette
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(s solver.Solver, store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		solver:  s,
		storage: store,
		palette: report.DefaultPalette(),
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.instanceUpdatedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetInstance(w http.ResponseWriter, r *http.Request) {
	_ = r
	inst, err := h.storage.GetInstance()
	if err != nil {
		writeNoInstanceError(w, err)
		return
	}

	resp := instanceResponse{
		Instance:  inst,
		UpdatedAt: h.currentInstanceUpdatedAt(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handlePutInstance(w http.ResponseWriter, r *http.Request) {
	var inst solver.Instance
	if err := json.NewDecoder(r.Body).Decode(&inst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if err := h.storage.SetInstance(inst); err != nil {
		writeInstanceValidationError(w, inst, err)
		return
	}

	h.markInstanceUpdated()

	stored, err := h.storage.GetInstance()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := instanceResponse{
		Instance:  stored,
		UpdatedAt: h.currentInstanceUpdatedAt(),
		Message:   "Instance stored successfully",
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleSolve computes the policy for the instance in the request body, or
// for the stored instance when the body is empty.
func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.resolveInstance(w, r)
	if !ok {
		return
	}

	start := time.Now()
	policy, err := h.solver.Solve(inst)
	elapsed := time.Since(start)

	if err != nil {
		writeInstanceValidationError(w, inst, err)
		return
	}
	if !policyFinite(policy) {
		writeError(w, http.StatusUnprocessableEntity, "Degenerate result",
			"the computed policy contains non-finite values",
			"Check that every setup cost is non-negative and at least one item has positive demand and unit value")
		return
	}

	resp := solveResponse{
		InstanceName:      policy.InstanceName,
		BaseCycle:         policy.BaseCycle,
		TotalCost:         policy.TotalCost,
		Results:           policy.Items,
		CalculationTimeMs: elapsed.Milliseconds(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleExport(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = r
		policy, ok := h.solveStored(w)
		if !ok {
			return
		}

		var (
			data        []byte
			err         error
			contentType string
		)
		switch format {
		case "json":
			data, err = report.RenderJSON(policy)
			contentType = "application/json"
		case "html":
			data, err = report.RenderHTML(policy, h.palette)
			contentType = "text/html; charset=utf-8"
		case "pdf":
			data, err = report.RenderPDF(policy)
			contentType = "application/pdf"
		default:
			writeError(w, http.StatusNotFound, "Unknown format", fmt.Sprintf("unsupported export format %q", format))
			return
		}
		if err != nil {
			writeInternalError(w, err)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=jrp_report.%s", format))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func (h *Handler) handleChart(w http.ResponseWriter, r *http.Request) {
	_ = r
	policy, ok := h.solveStored(w)
	if !ok {
		return
	}

	chart := report.BuildCostChart(policy, h.palette)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chart.Render(w); err != nil {
		writeInternalError(w, err)
	}
}

// resolveInstance decodes an instance from the body, falling back to the
// stored instance when no body is supplied.
func (h *Handler) resolveInstance(w http.ResponseWriter, r *http.Request) (solver.Instance, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeInternalError(w, err)
		return solver.Instance{}, false
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		inst, err := h.storage.GetInstance()
		if err != nil {
			writeNoInstanceError(w, err)
			return solver.Instance{}, false
		}
		return inst, true
	}

	var inst solver.Instance
	if err := json.Unmarshal(body, &inst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return solver.Instance{}, false
	}
	return inst, true
}

func (h *Handler) solveStored(w http.ResponseWriter) (solver.Policy, bool) {
	inst, err := h.storage.GetInstance()
	if err != nil {
		writeNoInstanceError(w, err)
		return solver.Policy{}, false
	}

	policy, err := h.solver.Solve(inst)
	if err != nil {
		writeInstanceValidationError(w, inst, err)
		return solver.Policy{}, false
	}
	return policy, true
}

func (h *Handler) currentInstanceUpdatedAt() time.Time {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.instanceUpdatedAt
}

func (h *Handler) markInstanceUpdated() {
	h.mu.Lock()
	h.instanceUpdatedAt = h.clock()
	h.mu.Unlock()
}

func policyFinite(policy solver.Policy) bool {
	if !isFinite(policy.BaseCycle) || !isFinite(policy.TotalCost) {
		return false
	}
	for _, item := range policy.Items {
		if !isFinite(item.Cycle) || !isFinite(item.SetupCost) ||
			!isFinite(item.HoldingCost) || !isFinite(item.TotalCost) {
			return false
		}
	}
	return true
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type instanceResponse struct {
	Instance  solver.Instance `json:"instance"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Message   string          `json:"message,omitempty"`
}

type solveResponse struct {
	InstanceName      string              `json:"instanceName"`
	BaseCycle         float64             `json:"baseCycle"`
	TotalCost         float64             `json:"totalCost"`
	Results           []solver.ItemPolicy `json:"results"`
	CalculationTimeMs int64               `json:"calculationTimeMs"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}

func writeNoInstanceError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrNoInstance) {
		writeError(w, http.StatusNotFound, "No instance loaded", err.Error(),
			"Upload an instance with PUT /api/instance first")
		return
	}
	writeInternalError(w, err)
}

func writeInstanceValidationError(w http.ResponseWriter, inst solver.Instance, err error) {
	switch {
	case errors.Is(err, solver.ErrNoItems),
		errors.Is(err, solver.ErrNonPositiveMajorSetup),
		errors.Is(err, solver.ErrNonPositiveHoldingRate):
		writeError(w, http.StatusBadRequest, "Invalid instance", err.Error())
	case errors.Is(err, solver.ErrDegenerateInstance):
		writeError(w, http.StatusUnprocessableEntity, "Degenerate instance", err.Error(),
			degeneracySuggestion(inst))
	default:
		writeInternalError(w, err)
	}
}

// degeneracySuggestion names the items without demand-value flow so the
// caller knows what to fix.
func degeneracySuggestion(inst solver.Instance) string {
	ids := make([]string, 0, len(inst.Items))
	for _, item := range inst.Items {
		if item.Demand*item.UnitValue <= 0 {
			ids = append(ids, item.ID)
		}
	}
	if len(ids) == 0 {
		return "Give at least one item a positive demand and unit value"
	}
	return fmt.Sprintf("Items with zero demand-value: %s; give at least one item a positive demand and unit value",
		strings.Join(ids, ", "))
}
