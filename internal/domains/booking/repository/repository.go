package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"safar/infras/otel"
	"safar/internal/domains/booking/model"
	"safar/shared/constant"
	"safar/shared/kvstore"
)

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) error
	Get(ctx context.Context, id string) (model.Booking, error)
	GetAll(ctx context.Context) ([]model.Booking, error)
	Update(ctx context.Context, booking model.Booking) error
}

type repositoryImpl struct {
	kv   kvstore.Store
	otel otel.Otel
}

func New(kv kvstore.Store, otel otel.Otel) Booking {
	return &repositoryImpl{
		kv:   kv,
		otel: otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".InsertBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.kv.Set(ctx, booking.ID, booking); err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) Get(ctx context.Context, id string) (booking model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.kv.Get(ctx, id, &booking); err != nil {
		return model.Booking{}, err
	}

	return booking, nil
}

// GetAll returns every booking record, newest first.
func (repo *repositoryImpl) GetAll(ctx context.Context) (bookings []model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAllBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	raws, err := repo.kv.GetByPrefix(ctx, model.KeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to scan bookings: %w", err)
	}

	bookings = make([]model.Booking, 0, len(raws))

	for _, raw := range raws {
		booking := model.Booking{}
		if err := json.Unmarshal(raw, &booking); err != nil {
			log.Error().Err(err).Msg("skipping undecodable booking record")

			continue
		}

		bookings = append(bookings, booking)
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	return bookings, nil
}

func (repo *repositoryImpl) Update(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = repo.kv.Set(ctx, booking.ID, booking); err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	return nil
}
