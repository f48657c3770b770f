package service

// Broadcaster pushes events to live report watchers (implemented by the ws hub)
type Broadcaster interface {
	BroadcastToReport(reportID string, msgType string, payload interface{})
}

// Event types sent to watchers
const (
	EventResponseReceived = "response_received"
)
