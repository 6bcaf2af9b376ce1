package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"safar/config"
	kafkaMocks "safar/infras/kafka/mocks"
	"safar/infras/otel/mocks"
	bookingMocks "safar/internal/domains/booking/mocks"
	"safar/internal/domains/booking/model"
	"safar/internal/domains/booking/model/dto"
	"safar/internal/domains/booking/service"
	packagesMocks "safar/internal/domains/packages/mocks"
	packagesModel "safar/internal/domains/packages/model"
	"safar/shared/failure"
	"safar/shared/identifier"
	"safar/shared/kvstore"
)

func fixedClock(millis int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(millis) }
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Topics.BookingEvents = "safar.booking.events"

	return cfg
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockPackageRepo := packagesMocks.NewMockPackage(ctrl)
	mockProducer := kafkaMocks.NewMockClient(ctrl)

	// Event publishing is fire-and-forget on a detached context, so the
	// expectation is deliberately loose.
	mockProducer.EXPECT().
		SendMessages(gomock.Any(), "safar.booking.events", gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(
		mockRepo,
		mockPackageRepo,
		identifier.NewWithClock(fixedClock(1718000000000)),
		mockProducer,
		testConfig(),
		mocks.NewOtel(),
	)

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
		check     func(t *testing.T, res dto.CreateBookingResponse)
	}{
		{
			name: "total is package price times travelers from a numeral string",
			req: dto.CreateBookingRequest{
				PackageID:     "package:100",
				Name:          "Aisha Rahman",
				Email:         "aisha@example.com",
				Phone:         "+60123456789",
				Travelers:     2, // form submits "2"; the dto coerces before this point
				DepartureDate: "2026-10-01",
			},
			setupMock: func() {
				mockPackageRepo.EXPECT().
					Get(gomock.Any(), "package:100").
					Return(packagesModel.Package{
						ID:    "package:100",
						Title: "Hajj Premium 2026",
						Price: 9000000,
					}, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, "booking:1718000000000", booking.ID)
						assert.Equal(t, model.StatusPending, booking.Status)
						assert.Equal(t, "Hajj Premium 2026", booking.PackageTitle)
						assert.InDelta(t, 18000000, booking.TotalAmount, 0.001)
						return nil
					})
			},
			check: func(t *testing.T, res dto.CreateBookingResponse) {
				assert.True(t, res.Success)
				assert.InDelta(t, 18000000, res.Booking.TotalAmount, 0.001)
			},
		},
		{
			name: "unknown package leaves nothing persisted",
			req: dto.CreateBookingRequest{
				PackageID:     "package:missing",
				Name:          "Aisha Rahman",
				Email:         "aisha@example.com",
				Phone:         "+60123456789",
				Travelers:     2,
				DepartureDate: "2026-10-01",
			},
			setupMock: func() {
				mockPackageRepo.EXPECT().
					Get(gomock.Any(), "package:missing").
					Return(packagesModel.Package{}, kvstore.ErrNotFound)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "malformed departure date",
			req: dto.CreateBookingRequest{
				PackageID:     "package:100",
				Name:          "Aisha Rahman",
				Email:         "aisha@example.com",
				Phone:         "+60123456789",
				Travelers:     2,
				DepartureDate: "01/10/2026",
			},
			setupMock: func() {
				mockPackageRepo.EXPECT().
					Get(gomock.Any(), "package:100").
					Return(packagesModel.Package{ID: "package:100", Price: 100}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "store error",
			req: dto.CreateBookingRequest{
				PackageID:     "package:100",
				Name:          "Aisha Rahman",
				Email:         "aisha@example.com",
				Phone:         "+60123456789",
				Travelers:     1,
				DepartureDate: "2026-10-01",
			},
			setupMock: func() {
				mockPackageRepo.EXPECT().
					Get(gomock.Any(), "package:100").
					Return(packagesModel.Package{ID: "package:100", Price: 100}, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("store unavailable"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				tt.check(t, res)
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockPackageRepo := packagesMocks.NewMockPackage(ctrl)
	mockProducer := kafkaMocks.NewMockClient(ctrl)

	svc := service.New(mockRepo, mockPackageRepo, identifier.New(), mockProducer, testConfig(), mocks.NewOtel())

	bookings := []model.Booking{
		{ID: "booking:3", Email: "aisha@example.com", CreatedAt: time.UnixMilli(3000)},
		{ID: "booking:2", Email: "bilal@example.com", CreatedAt: time.UnixMilli(2000)},
		{ID: "booking:1", Email: "aisha@example.com", CreatedAt: time.UnixMilli(1000)},
	}

	t.Run("all bookings newest first", func(t *testing.T) {
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(bookings, nil)

		res, err := svc.GetAll(context.Background(), "")

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 3)
		assert.Equal(t, "booking:3", res.Bookings[0].ID)
	})

	t.Run("filtered by exact email", func(t *testing.T) {
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(bookings, nil)

		res, err := svc.GetAll(context.Background(), "aisha@example.com")

		assert.NoError(t, err)
		assert.Len(t, res.Bookings, 2)
		assert.Equal(t, "booking:3", res.Bookings[0].ID)
		assert.Equal(t, "booking:1", res.Bookings[1].ID)
	})

	t.Run("no match yields empty list", func(t *testing.T) {
		mockRepo.EXPECT().GetAll(gomock.Any()).Return(bookings, nil)

		res, err := svc.GetAll(context.Background(), "nobody@example.com")

		assert.NoError(t, err)
		assert.Empty(t, res.Bookings)
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockPackageRepo := packagesMocks.NewMockPackage(ctrl)
	mockProducer := kafkaMocks.NewMockClient(ctrl)
	mockProducer.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, mockPackageRepo, identifier.New(), mockProducer, testConfig(), mocks.NewOtel())

	tests := []struct {
		name       string
		id         string
		status     string
		setupMock  func()
		wantErr    bool
		wantCode   int
		wantStatus string
	}{
		{
			name:   "status updated",
			id:     "booking:1718000000000",
			status: "confirmed",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), "booking:1718000000000").
					Return(model.Booking{ID: "booking:1718000000000", Status: model.StatusPending}, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, "confirmed", booking.Status)
						assert.NotNil(t, booking.UpdatedAt)
						return nil
					})
			},
			wantStatus: "confirmed",
		},
		{
			// No membership check on the incoming status; any string
			// round-trips.
			name:   "arbitrary status string accepted",
			id:     "booking:1718000000000",
			status: "awaiting-visa",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), "booking:1718000000000").
					Return(model.Booking{ID: "booking:1718000000000", Status: model.StatusPending}, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: "awaiting-visa",
		},
		{
			name:   "unknown identifier",
			id:     "booking:missing",
			status: "confirmed",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), "booking:missing").
					Return(model.Booking{}, kvstore.ErrNotFound)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:   "store failure",
			id:     "booking:1",
			status: "cancelled",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), "booking:1").
					Return(model.Booking{}, errors.New("connection refused"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.UpdateStatus(context.Background(), tt.id, tt.status)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.True(t, res.Success)
				assert.Equal(t, tt.wantStatus, res.Booking.Status)
			}
		})
	}
}
