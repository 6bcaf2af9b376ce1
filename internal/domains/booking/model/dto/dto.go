package dto

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"safar/internal/domains/booking/model"
	"safar/shared/failure"
)

const departureDateLayout = "2006-01-02"

// TravelerCount accepts both a JSON number and a numeral string ("2"), since
// the booking form submits the select value as a string.
type TravelerCount int

func (t *TravelerCount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return failure.BadRequestFromString("travelers must be a number")
		}
		*t = TravelerCount(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return failure.BadRequestFromString("travelers must be a number")
	}
	*t = TravelerCount(n)
	return nil
}

type CreateBookingRequest struct {
	PackageID       string        `json:"packageId"       validate:"required"`
	Name            string        `json:"name"            validate:"required"`
	Email           string        `json:"email"           validate:"required,email"`
	Phone           string        `json:"phone"           validate:"required"`
	Travelers       TravelerCount `json:"travelers"       validate:"required,gt=0"`
	DepartureDate   string        `json:"departureDate"   validate:"required"`
	SpecialRequests string        `json:"specialRequests"`
}

func (r *CreateBookingRequest) ToModel(id string, createdAt time.Time) (model.Booking, error) {
	departure, err := time.Parse(departureDateLayout, r.DepartureDate)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("departureDate must use the YYYY-MM-DD format")
	}

	return model.Booking{
		ID:              id,
		PackageID:       r.PackageID,
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Travelers:       int(r.Travelers),
		DepartureDate:   departure,
		SpecialRequests: r.SpecialRequests,
		Status:          model.StatusPending,
		CreatedAt:       createdAt,
	}, nil
}

type CreateBookingResponse struct {
	Success bool          `json:"success"`
	Booking model.Booking `json:"booking"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type BookingsResponse struct {
	Bookings []model.Booking `json:"bookings"`
}

func (r *BookingsResponse) FromModels(bookings []model.Booking) {
	r.Bookings = bookings
}

type UpdateBookingResponse struct {
	Success bool          `json:"success"`
	Booking model.Booking `json:"booking"`
}
