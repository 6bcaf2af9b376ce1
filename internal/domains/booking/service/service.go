package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"safar/config"
	"safar/infras/kafka"
	"safar/infras/otel"
	"safar/internal/domains/booking/model"
	"safar/internal/domains/booking/model/dto"
	"safar/internal/domains/booking/repository"
	packagesRepository "safar/internal/domains/packages/repository"
	"safar/shared/constant"
	"safar/shared/failure"
	"safar/shared/identifier"
	"safar/shared/kvstore"
	"safar/shared/timezone"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetAll(ctx context.Context, email string) (dto.BookingsResponse, error)
	UpdateStatus(ctx context.Context, id, status string) (dto.UpdateBookingResponse, error)
}

type serviceImpl struct {
	repo        repository.Booking
	packageRepo packagesRepository.Package
	idGen       identifier.Generator
	producer    kafka.Client
	config      *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Booking,
	packageRepo packagesRepository.Package,
	idGen identifier.Generator,
	producer kafka.Client,
	config *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:        repo,
		packageRepo: packageRepo,
		idGen:       idGen,
		producer:    producer,
		config:      config,
		otel:        otel,
	}
}

// Create resolves the referenced package, freezes its title and the total
// price into the booking record, and stores it with a pending status. The
// total is the package price times the traveler count, computed once at
// creation; later package edits do not touch existing bookings.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	pkg, err := s.packageRepo.Get(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return res, failure.NotFound("package not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Str("packageId", req.PackageID).Msg("failed to resolve package for booking")

		return res, fmt.Errorf("failed to resolve package for booking: %w", err)
	}

	booking, err := req.ToModel(s.idGen.NextID(model.KeyPrefix), timezone.Now())
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	booking.PackageTitle = pkg.Title
	booking.TotalAmount = pkg.Price * float64(booking.Travelers)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to store booking")

		return res, fmt.Errorf("failed to store booking: %w", err)
	}

	s.publishEvent(ctx, model.EventBookingCreated, booking)

	return dto.CreateBookingResponse{
		Success: true,
		Booking: booking,
	}, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, email string) (res dto.BookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	if email != "" {
		filtered := make([]model.Booking, 0, len(bookings))
		for _, booking := range bookings {
			if booking.Email == email {
				filtered = append(filtered, booking)
			}
		}

		bookings = filtered
	}

	res.FromModels(bookings)

	return res, nil
}

// UpdateStatus merges the new status and an update timestamp into the stored
// record. The status value is not checked against the enumerated set; the
// back-office dropdown constrains it on the client side.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id, status string) (res dto.UpdateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBookingStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return res, failure.NotFound("booking not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	now := timezone.Now()
	booking.Status = status
	booking.UpdatedAt = &now

	if err = s.repo.Update(ctx, booking); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	s.publishEvent(ctx, model.EventBookingStatusChanged, booking)

	return dto.UpdateBookingResponse{
		Success: true,
		Booking: booking,
	}, nil
}

// publishEvent pushes a booking event to Kafka without blocking the request.
// Publish failures are logged and swallowed; the booking itself is already
// persisted.
func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, booking model.Booking) {
	event := model.BookingEvent{
		Type:         eventType,
		BookingID:    booking.ID,
		PackageID:    booking.PackageID,
		PackageTitle: booking.PackageTitle,
		Name:         booking.Name,
		Email:        booking.Email,
		Status:       booking.Status,
		TotalAmount:  booking.TotalAmount,
		OccurredAt:   timezone.Now(),
	}

	go func(ctx context.Context) {
		err := s.producer.SendMessages(ctx, s.config.Kafka.Topics.BookingEvents, kafka.Message{
			Key:   booking.ID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("id", booking.ID).Str("type", eventType).Msg("failed to publish booking event")
		}
	}(context.WithoutCancel(ctx))
}
