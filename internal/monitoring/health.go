package monitoring

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// HealthChecker reports liveness plus a few counters about the simulations
// served so far. Counters are process-local; nothing persists across
// restarts.
type HealthChecker struct {
	mu        sync.RWMutex
	startedAt time.Time
	runsOK    int64
	runsErr   int64
	lastRun   time.Time
}

type HealthStatus struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Uptime        string    `json:"uptime"`
	RunsSucceeded int64     `json:"runs_succeeded"`
	RunsFailed    int64     `json:"runs_failed"`
	LastRun       time.Time `json:"last_run,omitzero"`
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{startedAt: time.Now()}
}

// RecordRun updates the run counters behind the health endpoint
func (h *HealthChecker) RecordRun(ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ok {
		h.runsOK++
	} else {
		h.runsErr++
	}
	h.lastRun = time.Now()
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	health := HealthStatus{
		Status:        "ok",
		Timestamp:     time.Now(),
		Uptime:        time.Since(h.startedAt).Round(time.Second).String(),
		RunsSucceeded: h.runsOK,
		RunsFailed:    h.runsErr,
		LastRun:       h.lastRun,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}
