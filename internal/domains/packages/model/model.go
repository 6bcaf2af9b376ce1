package model

import "time"

const (
	EntityName = "package"

	// KeyPrefix tags every package record key in the KV store.
	KeyPrefix = "package:"
)

// Known package types. The type field is an open set; these are the ones the
// site currently offers.
const (
	TypeHajj        = "hajj"
	TypeUmrah       = "umrah"
	TypeStudyAbroad = "study-abroad"
)

type Package struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	Duration    string    `json:"duration,omitempty"`
	Features    []string  `json:"features,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
}
