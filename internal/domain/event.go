package domain

import "time"

// PlaceEventsStream is the redis stream carrying directory change events.
const PlaceEventsStream = "places:events"

// Place event types.
const (
	EventPlaceCreated = "place.created"
	EventPlaceUpdated = "place.updated"
	EventPlaceDeleted = "place.deleted"
	EventDataCleared  = "data.cleared"
)

// PlaceEvent is published after every successful mutation so background
// consumers (stats refresh) can react without blocking the request path.
type PlaceEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	PlaceID    int64     `json:"place_id,omitempty"`
	OwnerType  string    `json:"owner_type,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// StreamMessage is a raw message read from a consumer group.
type StreamMessage struct {
	ID   string
	Data string
}
