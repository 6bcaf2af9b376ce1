package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"safar/infras/otel/mocks"
	contactMocks "safar/internal/domains/contact/mocks"
	"safar/internal/domains/contact/model"
	"safar/internal/domains/contact/model/dto"
	"safar/internal/domains/contact/service"
	"safar/shared/failure"
	"safar/shared/identifier"
	"safar/shared/kvstore"
)

func fixedClock(millis int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(millis) }
}

func TestContactService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockOtel := mocks.NewOtel()
	idGen := identifier.NewWithClock(fixedClock(1718000000000))

	svc := service.New(mockRepo, idGen, mockOtel)

	tests := []struct {
		name      string
		req       dto.SubmitContactRequest
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "successful submission",
			req: dto.SubmitContactRequest{
				Name:    "Aisha Rahman",
				Email:   "aisha@example.com",
				Phone:   "+60123456789",
				Service: "umrah",
				Message: "Interested in the deluxe package",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
			wantID:  "contact:1718000000000",
		},
		{
			name: "store error",
			req: dto.SubmitContactRequest{
				Name:    "Aisha Rahman",
				Email:   "aisha@example.com",
				Phone:   "+60123456789",
				Service: "umrah",
				Message: "Interested in the deluxe package",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("store unavailable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Submit(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, res.Success)
				assert.Equal(t, tt.wantID, res.ID)
			}
		})
	}
}

func TestContactService_Submit_IdentifiersUniqueUnderFrozenClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	svc := service.New(mockRepo, identifier.NewWithClock(fixedClock(1718000000000)), mocks.NewOtel())

	req := dto.SubmitContactRequest{
		Name:    "Bilal",
		Email:   "bilal@example.com",
		Phone:   "+123",
		Service: "hajj",
		Message: "hello",
	}

	seen := map[string]struct{}{}

	for range 3 {
		res, err := svc.Submit(context.Background(), req)

		assert.NoError(t, err)
		seen[res.ID] = struct{}{}
	}

	assert.Len(t, seen, 3)
}

func TestContactService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	svc := service.New(mockRepo, identifier.New(), mocks.NewOtel())

	contacts := []model.Contact{
		{ID: "contact:2", Name: "Newer", CreatedAt: time.UnixMilli(2000)},
		{ID: "contact:1", Name: "Older", CreatedAt: time.UnixMilli(1000)},
	}

	mockRepo.EXPECT().GetAll(gomock.Any()).Return(contacts, nil)

	res, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, res.Contacts, 2)
	assert.Equal(t, "contact:2", res.Contacts[0].ID)
}

func TestContactService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := contactMocks.NewMockContact(ctrl)
	svc := service.New(mockRepo, identifier.New(), mocks.NewOtel())

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
			id:     "contact:1718000000000",
			status: "contacted",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), "contact:1718000000000").
					Return(model.Contact{ID: "contact:1718000000000", Status: "new"}, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, contact model.Contact) error {
						assert.Equal(t, "contacted", contact.Status)
						assert.NotNil(t, contact.UpdatedAt)
						return nil
					})
			},
			wantStatus: "contacted",
		},
		{
			// The handler performs no membership check on the incoming
			// status; any string round-trips.
			name:   "arbitrary status string accepted",
			id:     "contact:1718000000000",
			status: "escalated-to-legal",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), "contact:1718000000000").
					Return(model.Contact{ID: "contact:1718000000000", Status: "new"}, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantStatus: "escalated-to-legal",
		},
		{
			name:   "unknown identifier",
			id:     "contact:missing",
			status: "resolved",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), "contact:missing").
					Return(model.Contact{}, kvstore.ErrNotFound)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:   "store failure",
			id:     "contact:1",
			status: "resolved",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), "contact:1").
					Return(model.Contact{}, errors.New("connection refused"))
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
				assert.Equal(t, tt.wantStatus, res.Contact.Status)
			}
		})
	}
}
