package types

import "time"

const (
	EventEnquiryReceived      = "enquiry.received"
	EventProjectionCalculated = "projection.calculated"
)

// SiteEvent is published to the configured brokers for back-office consumers.
type SiteEvent struct {
	Type      string         `json:"type"`
	VisitorID string         `json:"visitorId,omitempty"`
	Language  string         `json:"language,omitempty"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"createdAt"`
}
