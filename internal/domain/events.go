package domain

import "time"

// Bus event names. Dashboard panels and the storefront cache key off these.
const (
	EventRestaurantUpdated   = "restaurant:updated"
	EventSubscriptionUpdated = "subscription:updated"
	EventDashboardNavigate   = "dashboard:navigate"
)

// EventDetail is the payload attached to a bus event. An empty Team on
// restaurant:updated means the event affects all teams.
type EventDetail struct {
	Team  string `json:"team,omitempty"`
	Panel string `json:"panel,omitempty"`
}

// EventMessage is the wire form used when mirroring bus events to Kafka.
type EventMessage struct {
	Type      string    `json:"type"`
	Team      string    `json:"team,omitempty"`
	Panel     string    `json:"panel,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
