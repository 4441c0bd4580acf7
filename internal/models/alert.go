package models

import "encoding/json"

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SOSAlert is whatever the caller sent, plus the id assigned on receipt.
// Fields are not validated; Raw keeps the body when it did not decode.
type SOSAlert struct {
	AlertID    string          `json:"alertId"`
	Timestamp  string          `json:"timestamp,omitempty"`
	Location   *Location       `json:"location,omitempty"`
	Type       string          `json:"type,omitempty"`
	ReceivedAt string          `json:"receivedAt"`
	Raw        json.RawMessage `json:"raw,omitempty"`
}
