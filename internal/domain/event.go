package domain

import (
	"context"
	"mime/multipart"
	"time"
)

// Event represents a bazaar-style event: a market, exhibition, or carnival.
// swagger:model Event
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	// Date is free-form text as entered by the administrator; it is not
	// guaranteed to parse as a calendar date.
	Date      string     `json:"date"`
	Image     *string    `json:"image"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// EventUpdate carries a partial update. Nil fields keep their prior values.
type EventUpdate struct {
	Name        *string
	Description *string
	Location    *string
	Date        *string
}

// EventRepository defines storage operations for events.
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	// Create assigns the event's ID and appends it to the collection.
	Create(ctx context.Context, event *Event) error
	// Update replaces the stored record with the same ID.
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}

// EventService defines event operations exposed to the delivery layer.
type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	// CreateEvent fills in ID, CreatedAt and, when image is non-nil, the
	// stored image reference, then persists the event.
	CreateEvent(ctx context.Context, event *Event, image *multipart.FileHeader) error
	// UpdateEvent merges patch onto the stored event. The image reference is
	// replaced only when a new image was uploaded.
	UpdateEvent(ctx context.Context, id string, patch EventUpdate, image *multipart.FileHeader) (*Event, error)
	// DeleteEvent removes the event and, best-effort, every booth that
	// references it.
	DeleteEvent(ctx context.Context, id string) error
}
