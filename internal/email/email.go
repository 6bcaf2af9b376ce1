package email

import (
	"context"

	"github.com/rs/zerolog/log"

	bookingModel "safar/internal/domains/booking/model"
)

// Sender turns booking events into customer notifications. Delivery is a log
// line for now; the SMTP relay integration replaces the body of Send.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event bookingModel.BookingEvent) error {
	log.Info().
		Str("to", event.Email).
		Str("type", event.Type).
		Str("bookingId", event.BookingID).
		Str("package", event.PackageTitle).
		Str("status", event.Status).
		Msg("sending booking notification email")

	return nil
}
