package sse

import "time"

// Event names emitted on the page event stream.
const (
	EventConnected  = "connected"
	EventHeartbeat  = "heartbeat"
	EventNavigation = "navigation"
	EventScroll     = "scroll"
	EventAnalysis   = "analysis"
)

// ConnectedEvent is the first event on every stream.
type ConnectedEvent struct {
	ConnectionID string `json:"connectionId"`
	SessionID    string `json:"sessionId"`
}

// HeartbeatEvent keeps idle connections open through proxies.
type HeartbeatEvent struct {
	Timestamp string `json:"timestamp"`
}

// NewHeartbeatEvent stamps a heartbeat with t in UTC.
func NewHeartbeatEvent(t time.Time) HeartbeatEvent {
	return HeartbeatEvent{Timestamp: t.UTC().Format(time.RFC3339)}
}
