package httpx

import (
	"context"
	"net/http"
	"time"
)

// Counter reports the size of an in-memory registry.
type Counter interface {
	Count(ctx context.Context) int
}

// HealthInfo describes the process for the health endpoint.
type HealthInfo struct {
	Service   string
	Version   string
	StartedAt time.Time
	Houses    Counter
}

type healthResponse struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	Version       string `json:"version"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Houses        int    `json:"houses"`
}

// HealthHandler returns an http.HandlerFunc reporting liveness and the number
// of registered houses. State lives in memory, so there is nothing to probe.
func HealthHandler(info HealthInfo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{
			Status:        "ok",
			Service:       info.Service,
			Version:       info.Version,
			UptimeSeconds: int64(time.Since(info.StartedAt).Seconds()),
		}
		if info.Houses != nil {
			resp.Houses = info.Houses.Count(r.Context())
		}
		JSON(w, http.StatusOK, resp)
	}
}
