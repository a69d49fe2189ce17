package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"

	simerrors "github.com/katiapek/CompoundingSimulator/internal/errors"
	"github.com/katiapek/CompoundingSimulator/internal/monitoring"
	"github.com/katiapek/CompoundingSimulator/internal/simulation"
	"github.com/katiapek/CompoundingSimulator/internal/statistics"
)

// simulateResponse is the API document returned for a successful run
type simulateResponse struct {
	RunID         string                    `json:"run_id"`
	Statistics    statistics.Result         `json:"statistics"`
	Points        []simulation.BalancePoint `json:"points"`
	Ledger        []simulation.LedgerRow    `json:"ledger"`
	StartBalance  float64                   `json:"start_balance"`
	EndBalance    float64                   `json:"end_balance"`
	TotalReturn   float64                   `json:"total_return"`
	TargetReached bool                      `json:"target_reached"`
}

type errorResponse struct {
	Error    string `json:"error"`
	Category string `json:"category,omitempty"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var params simulation.Parameters
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		monitoring.RecordError(string(simerrors.ErrorCategoryValidation))
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:    "malformed request body: " + err.Error(),
			Category: string(simerrors.ErrorCategoryValidation),
		})
		return
	}

	started := time.Now()
	result, err := simulation.Run(params)
	if err != nil {
		s.health.RecordRun(false)
		monitoring.RecordSimulation("error", time.Since(started), 0)
		monitoring.RecordError(string(simerrors.Category(err)))
		writeJSON(w, statusFor(err), errorResponse{
			Error:    err.Error(),
			Category: string(simerrors.Category(err)),
		})
		return
	}
	s.health.RecordRun(true)
	monitoring.RecordSimulation("success", time.Since(started), result.EndBalance)

	writeJSON(w, http.StatusOK, simulateResponse{
		RunID:         ulid.Make().String(),
		Statistics:    result.Statistics,
		Points:        result.Points,
		Ledger:        result.Ledger,
		StartBalance:  result.StartBalance,
		EndBalance:    result.EndBalance,
		TotalReturn:   result.TotalReturn,
		TargetReached: result.TargetReached,
	})
}

// statusFor maps the error taxonomy onto HTTP statuses: invalid input is
// the caller's fault, overflow is a valid request the math cannot honor
func statusFor(err error) int {
	switch {
	case simerrors.IsValidation(err):
		return http.StatusBadRequest
	case simerrors.IsOverflow(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
