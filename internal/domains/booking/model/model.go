package model

import "time"

const (
	EntityName = "booking"

	// KeyPrefix tags every booking record key in the KV store.
	KeyPrefix = "booking:"
)

// Statuses the back-office dropdown offers. The update path deliberately
// accepts any status string; the dropdown constrains it client-side.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking carries a denormalized snapshot of the referenced package: title and
// computed total are frozen at creation time and never recomputed when the
// package changes.
type Booking struct {
	ID              string     `json:"id"`
	PackageID       string     `json:"packageId"`
	PackageTitle    string     `json:"packageTitle"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Travelers       int        `json:"travelers"`
	DepartureDate   time.Time  `json:"departureDate"`
	SpecialRequests string     `json:"specialRequests,omitempty"`
	Status          string     `json:"status"`
	TotalAmount     float64    `json:"totalAmount"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}
