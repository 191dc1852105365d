package domain

import (
	"context"
	"mime/multipart"
	"time"
)

// MaxBoothPhotos is the upper bound on photos accepted per booth submission.
// Files beyond the cap are dropped in receipt order, matching the behavior
// admins already rely on.
const MaxBoothPhotos = 5

// GeoPoint is a WGS84 coordinate pair used for booth placement on the
// event map.
// swagger:model GeoPoint
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Booth represents a vendor's presence within an event. EventID is a
// reference to an Event's ID but is never validated against the events
// collection; orphaned references are tolerated.
// swagger:model Booth
type Booth struct {
	ID          string    `json:"id"`
	EventID     string    `json:"eventId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Contact     string    `json:"contact"`
	SocialMedia string    `json:"socialMedia,omitempty"`
	Location    *GeoPoint `json:"location,omitempty"`
	BoothNumber string    `json:"boothNumber"`
	Products    []string  `json:"products,omitempty"`
	Photos      []string  `json:"photos"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BoothRepository defines storage operations for booths.
type BoothRepository interface {
	List(ctx context.Context) ([]*Booth, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Booth, error)
	// Create assigns the booth's ID and appends it to the collection.
	Create(ctx context.Context, booth *Booth) error
	Delete(ctx context.Context, id string) error
	// DeleteByEventID removes every booth referencing eventID and reports
	// how many were removed. Removing zero booths is not an error.
	DeleteByEventID(ctx context.Context, eventID string) (int, error)
	// Search matches query case-insensitively against name, description,
	// and each product. Booths without products are matched on name and
	// description only.
	Search(ctx context.Context, query string) ([]*Booth, error)
}

// BoothService defines booth operations exposed to the delivery layer.
type BoothService interface {
	// ListBooths returns booths for the given event, or all booths when
	// eventID is empty.
	ListBooths(ctx context.Context, eventID string) ([]*Booth, error)
	// CreateBooth requires booth.EventID and returns ErrValidation when it
	// is missing. At most MaxBoothPhotos photos are stored.
	CreateBooth(ctx context.Context, booth *Booth, photos []*multipart.FileHeader) error
	DeleteBooth(ctx context.Context, id string) error
	SearchBooths(ctx context.Context, query string) ([]*Booth, error)
}
