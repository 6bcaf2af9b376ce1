package contact_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"safar/infras/otel/mocks"
	"safar/internal/domains/contact/model/dto"
	"safar/internal/handlers/contact"
)

// stubService records calls so tests can assert nothing reached the store on
// validation failures.
type stubService struct {
	submitCalls int
	submitRes   dto.SubmitContactResponse
}

func (s *stubService) Submit(_ context.Context, _ dto.SubmitContactRequest) (dto.SubmitContactResponse, error) {
	s.submitCalls++
	return s.submitRes, nil
}

func (s *stubService) GetAll(_ context.Context) (dto.ContactsResponse, error) {
	return dto.ContactsResponse{}, nil
}

func (s *stubService) UpdateStatus(_ context.Context, _, _ string) (dto.UpdateContactResponse, error) {
	return dto.UpdateContactResponse{}, nil
}

func TestContactHandler_SubmitContact(t *testing.T) {
	t.Run("missing required field is rejected before the service runs", func(t *testing.T) {
		svc := &stubService{}
		handler := contact.New(svc, nil, mocks.NewOtel())

		body := `{"name":"Aisha","email":"aisha@example.com","phone":"+60123456789","service":"umrah"}`
		request := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
		recorder := httptest.NewRecorder()

		handler.SubmitContact(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Zero(t, svc.submitCalls)
	})

	t.Run("valid submission returns the stored identifier", func(t *testing.T) {
		svc := &stubService{submitRes: dto.SubmitContactResponse{Success: true, ID: "contact:1718000000000"}}
		handler := contact.New(svc, nil, mocks.NewOtel())

		body := `{"name":"Aisha","email":"aisha@example.com","phone":"+60123456789","service":"umrah","message":"Interested in the deluxe package"}`
		request := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
		recorder := httptest.NewRecorder()

		handler.SubmitContact(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Equal(t, 1, svc.submitCalls)
		assert.JSONEq(t, `{"success":true,"id":"contact:1718000000000"}`, recorder.Body.String())
	})
}
