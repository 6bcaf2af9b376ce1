package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"safar/infras/otel/mocks"
	"safar/internal/domains/admin/service"
	bookingMocks "safar/internal/domains/booking/mocks"
	bookingModel "safar/internal/domains/booking/model"
	contactMocks "safar/internal/domains/contact/mocks"
	contactModel "safar/internal/domains/contact/model"
)

func TestAdminService_GetDashboardStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockContactRepo := contactMocks.NewMockContact(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)

	svc := service.New(mockContactRepo, mockBookingRepo, mocks.NewOtel())

	t.Run("counters and revenue", func(t *testing.T) {
		mockContactRepo.EXPECT().GetAll(gomock.Any()).Return([]contactModel.Contact{
			{ID: "contact:1", Status: contactModel.StatusNew},
			{ID: "contact:2", Status: contactModel.StatusContacted},
			{ID: "contact:3", Status: contactModel.StatusNew},
		}, nil)
		mockBookingRepo.EXPECT().GetAll(gomock.Any()).Return([]bookingModel.Booking{
			{ID: "booking:1", Status: bookingModel.StatusConfirmed, TotalAmount: 100},
			{ID: "booking:2", Status: bookingModel.StatusPending, TotalAmount: 50},
			{ID: "booking:3", Status: bookingModel.StatusConfirmed, TotalAmount: 200},
			{ID: "booking:4", Status: bookingModel.StatusCancelled, TotalAmount: 999},
		}, nil)

		stats, err := svc.GetDashboardStats(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 3, stats.TotalContacts)
		assert.Equal(t, 2, stats.NewContacts)
		assert.Equal(t, 4, stats.TotalBookings)
		assert.Equal(t, 1, stats.PendingBookings)
		assert.Equal(t, 2, stats.ConfirmedBookings)
		assert.InDelta(t, 300, stats.TotalRevenue, 0.001)
	})

	t.Run("empty store yields zeroes", func(t *testing.T) {
		mockContactRepo.EXPECT().GetAll(gomock.Any()).Return([]contactModel.Contact{}, nil)
		mockBookingRepo.EXPECT().GetAll(gomock.Any()).Return([]bookingModel.Booking{}, nil)

		stats, err := svc.GetDashboardStats(context.Background())

		assert.NoError(t, err)
		assert.Zero(t, stats.TotalContacts)
		assert.Zero(t, stats.TotalRevenue)
	})

	t.Run("contact store failure", func(t *testing.T) {
		mockContactRepo.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("scan failed"))

		_, err := svc.GetDashboardStats(context.Background())

		assert.Error(t, err)
	})

	t.Run("booking store failure", func(t *testing.T) {
		mockContactRepo.EXPECT().GetAll(gomock.Any()).Return([]contactModel.Contact{}, nil)
		mockBookingRepo.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("scan failed"))

		_, err := svc.GetDashboardStats(context.Background())

		assert.Error(t, err)
	})
}
