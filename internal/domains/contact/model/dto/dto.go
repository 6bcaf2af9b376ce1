package dto

import (
	"time"

	"safar/internal/domains/contact/model"
)

type SubmitContactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"required"`
	Service string `json:"service" validate:"required"`
	Message string `json:"message" validate:"required"`
}

func (r *SubmitContactRequest) ToModel(id string, createdAt time.Time) model.Contact {
	return model.Contact{
		ID:        id,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Service:   r.Service,
		Message:   r.Message,
		Status:    model.StatusNew,
		CreatedAt: createdAt,
	}
}

type SubmitContactResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type ContactsResponse struct {
	Contacts []model.Contact `json:"contacts"`
}

func (r *ContactsResponse) FromModels(contacts []model.Contact) {
	r.Contacts = contacts
}

type UpdateContactResponse struct {
	Success bool          `json:"success"`
	Contact model.Contact `json:"contact"`
}
