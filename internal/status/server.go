// Package status exposes a small HTTP endpoint reporting bot liveness.
package status

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"server-molt/internal/command"
	"server-molt/internal/version"
)

type report struct {
	App      string `json:"app"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
	Commands int    `json:"commands"`
}

// RunServer starts the status HTTP server and respects ctx for graceful
// shutdown. It blocks until the server exits; run in a goroutine.
func RunServer(ctx context.Context, addr string, startedAt func() time.Time) {
	mux := http.NewServeMux()
	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		uptime := "offline"
		if t := startedAt(); !t.IsZero() {
			uptime = time.Since(t).Round(time.Second).String()
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report{ //nolint:errcheck
			App:      version.AppName,
			Version:  version.Version,
			Uptime:   uptime,
			Commands: len(command.All()),
		})
	})

	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		log.Println("[INFO] Shutting down status server...")
		srv.Shutdown(context.Background()) //nolint:errcheck
	}()

	log.Printf("[INFO] Status server listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("[ERR] Status server exited: %v", err)
	}
}
