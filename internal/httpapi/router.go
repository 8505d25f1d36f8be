package httpapi

import (
	"net/http"
	"os"
	"strconv"

	"golang.org/x/sync/semaphore"
)

func Router(h *Handlers) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.Healthz)
	mux.HandleFunc("/run", h.Run)       // POST
	mux.HandleFunc("/verify", h.Verify) // GET

	// Backpressure at the edge. Prevents unbounded queueing of run
	// requests (each one walks a scenario's full pipeline and writes to
	// disk) when the process is already saturated.
	max := mustIntEnv("EPGS_HTTP_MAX_INFLIGHT", 64)
	return withConcurrencyLimit(mux, max)
}

func mustIntEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// withConcurrencyLimit caps in-flight requests with a weighted
// semaphore instead of queueing them indefinitely: a request that
// can't acquire a slot immediately fails fast with 503.
func withConcurrencyLimit(next http.Handler, max int) http.Handler {
	if max <= 0 {
		max = 64
	}
	sem := semaphore.NewWeighted(int64(max))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !sem.TryAcquire(1) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":"server busy"}`))
			return
		}
		defer sem.Release(1)
		next.ServeHTTP(w, r)
	})
}
