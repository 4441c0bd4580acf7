package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/24KD1A0503/jn/internal/models"
	"github.com/24KD1A0503/jn/internal/utils"
)

type SOSPublisher interface {
	PublishSOS(a models.SOSAlert)
}

type SOSHTTP struct {
	pub SOSPublisher
	log zerolog.Logger
	now func() time.Time
}

func NewSOSHTTP(pub SOSPublisher, log zerolog.Logger) *SOSHTTP {
	return &SOSHTTP{pub: pub, log: log, now: time.Now}
}

type SOSAck struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	AlertID string `json:"alertId"`
}

const maxSOSBody = 64 << 10

// POST /api/emergency/sos
//
// Every request is acknowledged. The body is not validated; whatever
// decodes is forwarded to responders.
func (h *SOSHTTP) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := h.now()
		alert := models.SOSAlert{
			AlertID:    "SOS-" + strconv.FormatInt(now.UnixMilli(), 10),
			ReceivedAt: now.UTC().Format(time.RFC3339),
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSOSBody))
		if err != nil {
			h.log.Warn().Err(err).Msg("sos body unreadable")
		}
		var in struct {
			Timestamp string           `json:"timestamp"`
			Location  *models.Location `json:"location"`
			Type      string           `json:"type"`
		}
		if len(body) > 0 {
			if err := json.Unmarshal(body, &in); err != nil {
				h.log.Warn().Err(err).Int("bytes", len(body)).Msg("sos body did not decode")
				if json.Valid(body) {
					alert.Raw = json.RawMessage(body)
				}
			} else {
				alert.Timestamp, alert.Location, alert.Type = in.Timestamp, in.Location, in.Type
			}
		}

		ev := h.log.Warn().Str("alertId", alert.AlertID).Str("type", alert.Type)
		if alert.Location != nil {
			ev = ev.Float64("lat", alert.Location.Lat).Float64("lng", alert.Location.Lng)
		}
		ev.Msg("SOS alert received")

		if h.pub != nil {
			h.pub.PublishSOS(alert)
		}
		utils.JSON(w, http.StatusOK, SOSAck{
			Success: true,
			Message: "SOS alert sent successfully",
			AlertID: alert.AlertID,
		})
	}
}
