// Command server runs the EPGS HTTP adapter: POST /run and
// GET /verify thin wrappers around the core pipeline.
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"epgs/internal/httpapi"
)

func mustEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func main() {
	start := time.Now()

	addr := mustEnv("EPGS_HTTP_ADDR", ":8080")
	outputRoot := mustEnv("EPGS_OUTPUT_ROOT", "./output")

	log.Printf("[startup] begin addr=%s output_root=%s", addr, outputRoot)

	h := httpapi.NewHandlers(outputRoot)

	srv := &http.Server{
		Addr:    addr,
		Handler: httpapi.Router(h),

		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf(
		"[startup] ready in %s, listening on %s",
		time.Since(start).Truncate(time.Millisecond),
		addr,
	)

	log.Fatal(srv.ListenAndServe())
}
