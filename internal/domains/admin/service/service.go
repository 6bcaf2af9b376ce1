package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"safar/infras/otel"
	"safar/internal/domains/admin/model/dto"
	bookingModel "safar/internal/domains/booking/model"
	bookingRepository "safar/internal/domains/booking/repository"
	contactModel "safar/internal/domains/contact/model"
	contactRepository "safar/internal/domains/contact/repository"
	"safar/shared/constant"
)

type Admin interface {
	GetDashboardStats(ctx context.Context) (dto.DashboardStats, error)
}

type serviceImpl struct {
	contactRepo contactRepository.Contact
	bookingRepo bookingRepository.Booking
	otel        otel.Otel
}

func New(contactRepo contactRepository.Contact, bookingRepo bookingRepository.Booking, otel otel.Otel) Admin {
	return &serviceImpl{
		contactRepo: contactRepo,
		bookingRepo: bookingRepo,
		otel:        otel,
	}
}

// GetDashboardStats folds the full contact and booking sets into counters.
// Stats are computed on demand; nothing is cached or incremented on write.
func (s *serviceImpl) GetDashboardStats(ctx context.Context) (stats dto.DashboardStats, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDashboardStats")
	defer scope.End()
	defer scope.TraceIfError(err)

	contacts, err := s.contactRepo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contacts for dashboard stats")

		return stats, fmt.Errorf("failed to get contacts for dashboard stats: %w", err)
	}

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for dashboard stats")

		return stats, fmt.Errorf("failed to get bookings for dashboard stats: %w", err)
	}

	stats.TotalContacts = len(contacts)
	for _, contact := range contacts {
		if contact.Status == contactModel.StatusNew {
			stats.NewContacts++
		}
	}

	stats.TotalBookings = len(bookings)
	for _, booking := range bookings {
		switch booking.Status {
		case bookingModel.StatusPending:
			stats.PendingBookings++
		case bookingModel.StatusConfirmed:
			stats.ConfirmedBookings++
			stats.TotalRevenue += booking.TotalAmount
		}
	}

	return stats, nil
}
