package model

import "time"

// Event types published to the booking events topic.
const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
)

// BookingEvent is the message body pushed to Kafka whenever a booking is
// created or its status changes. The notification worker consumes it.
type BookingEvent struct {
	Type         string    `json:"type"`
	BookingID    string    `json:"bookingId"`
	PackageID    string    `json:"packageId"`
	PackageTitle string    `json:"packageTitle"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Status       string    `json:"status"`
	TotalAmount  float64   `json:"totalAmount"`
	OccurredAt   time.Time `json:"occurredAt"`
}
