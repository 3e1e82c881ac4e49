package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies a placement domain event.
type EventType string

const (
	EventDrivePosted       EventType = "placement.drive.posted"
	EventDriveRemoved      EventType = "placement.drive.removed"
	EventRoadmapGenerated  EventType = "placement.roadmap.generated"
	EventMockTestRecorded  EventType = "placement.mock_test.recorded"
	EventSessionTransition EventType = "placement.session.transition"
)

// PlacementEvent is the envelope published for every domain event.
type PlacementEvent struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// NewPlacementEvent creates an event envelope with generated id and timestamp.
func NewPlacementEvent(eventType EventType, data interface{}) *PlacementEvent {
	return &PlacementEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    "placement-service",
		Version:   "1.0",
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// DriveEvent carries drive catalog changes.
type DriveEvent struct {
	DriveID     string `json:"drive_id"`
	CompanyName string `json:"company_name,omitempty"`
	Role        string `json:"role,omitempty"`
}

// RoadmapEvent is published when a roadmap is generated for a student.
type RoadmapEvent struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// SessionEvent is published on sign-in/sign-out transitions.
type SessionEvent struct {
	UID      string `json:"uid,omitempty"`
	Role     string `json:"role,omitempty"`
	SignedIn bool   `json:"signed_in"`
}

// MockTestEvent is published when a mock test result is recorded.
type MockTestEvent struct {
	UserID         string `json:"user_id"`
	ResultID       string `json:"result_id"`
	Topic          string `json:"topic"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
}
