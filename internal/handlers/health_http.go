package handlers

import (
	"net/http"
	"time"

	"github.com/24KD1A0503/jn/internal/utils"
)

type HealthStatus struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
	Port      string `json:"port"`
}

// Health answers 200 unconditionally; it depends on nothing else in the process.
func Health(service, port string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.JSON(w, http.StatusOK, HealthStatus{
			Status:    "OK",
			Service:   service,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Port:      port,
		})
	}
}
