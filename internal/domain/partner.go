package domain

import "time"

// PartnerRecord is a single row from the partners_unified view, as stored.
// The view is denormalized from upstream sources, so rating may arrive as
// text and the collection fields arrive as raw JSON documents (or NULL).
type PartnerRecord struct {
	ID          string
	Name        string
	Type        *string
	Description *string
	Location    *string
	PriceRange  *string
	RatingRaw   *string
	Amenities   []byte // JSON array or NULL
	Coordinates []byte // JSON object or NULL
	Images      []byte // JSON array or NULL
	ContactInfo []byte // JSON object or NULL
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

// PartnerView is the stable external contract returned by the lookup path.
// Rating is always a parsed float or absent; Amenities and Images are always
// present (possibly empty); ContactInfo is either fully structured or absent.
type PartnerView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        *string    `json:"type,omitempty"`
	Description *string    `json:"description,omitempty"`
	Location    *string    `json:"location,omitempty"`
	PriceRange  *string    `json:"price_range,omitempty"`
	Rating      *float64   `json:"rating,omitempty"`
	Amenities   []string   `json:"amenities"`
	Coordinates *Coords    `json:"coordinates,omitempty"`
	Images      []string   `json:"images"`
	ContactInfo *Contact   `json:"contact_info,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type Coords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Contact struct {
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

// PartnerSummary is the compact shape used by the listing endpoint.
type PartnerSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     *string  `json:"type,omitempty"`
	Location *string  `json:"location,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
}

type PartnersPage struct {
	Items []PartnerSummary `json:"items"`
}
