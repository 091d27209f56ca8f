package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

const pingTimeout = 2 * time.Second

// pinger is the part of the store the health check needs.
type pinger interface {
	Ping(ctx context.Context) error
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// healthHandler handles GET /health. It answers 200 with status "ok" when
// the database responds and 503 otherwise.
func healthHandler(db pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")

		resp := healthResponse{Status: "ok", Database: "connected"}
		if err := db.Ping(ctx); err != nil {
			slog.Error("Health check: database ping failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			resp.Status = "error"
			resp.Database = "disconnected"
			resp.Error = err.Error()
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
