package models

import (
	"time"

	"github.com/google/uuid"
)

// Location is a geographic coordinate pair attached to every place.
// Geocoding is currently stubbed, so both fields are always zero.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place represents a single directory entry created and owned by a user.
type Place struct {
	// PlaceID is the store-assigned unique identifier of the place.
	PlaceID uuid.UUID `json:"id"`

	// Title is the short display name of the place. Non-empty.
	Title string `json:"title"`

	// Description is a longer free-form text. Non-empty.
	Description string `json:"description"`

	// Address is the human-readable postal address, stored verbatim.
	Address string `json:"address"`

	// Location holds the coordinates resolved for Address.
	Location Location `json:"location"`

	// Image is the storage path of the place photo, set at creation.
	Image string `json:"image"`

	// Creator is the exclusive reference to the owning user.
	// Set once at creation and never reassigned.
	Creator uuid.UUID `json:"creator"`

	// CreatedAt is the timestamp when the place was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Place model.
func (p Place) TableName() string {
	return "places"
}
