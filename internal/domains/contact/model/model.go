package model

import "time"

const (
	EntityName = "contact"

	// KeyPrefix tags every contact record key in the KV store.
	KeyPrefix = "contact:"
)

// Statuses the back-office dropdown offers. The update path deliberately
// accepts any status string; the dropdown constrains it client-side.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusResolved  = "resolved"
)

type Contact struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Service   string     `json:"service"`
	Message   string     `json:"message"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
