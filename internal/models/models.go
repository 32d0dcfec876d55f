// Package models holds the records shared between the API layer and the
// stores.
package models

import "time"

// FillRecord is one completed fill request.
type FillRecord struct {
	ID         string    `json:"id"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Input      string    `json:"input"`
	Solution   string    `json:"solution"`
	Strategy   string    `json:"strategy"`
	DurationMs int64     `json:"durationMs"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Fill lifecycle event types broadcast to websocket subscribers.
const (
	EventFillStarted   = "fill.started"
	EventFillProgress  = "fill.progress"
	EventFillCompleted = "fill.completed"
	EventFillFailed    = "fill.failed"
)

// FillEvent is one lifecycle event for a fill request.
type FillEvent struct {
	Type       string `json:"type"`
	ID         string `json:"id"`
	Candidates uint64 `json:"candidates,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Error      string `json:"error,omitempty"`
}
