package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"safar/internal/domains/booking/model/dto"
)

func TestCreateBookingRequest_TravelersCoercion(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    int
		wantErr bool
	}{
		{
			name:    "number",
			payload: `{"travelers": 3}`,
			want:    3,
		},
		{
			name:    "numeral string",
			payload: `{"travelers": "2"}`,
			want:    2,
		},
		{
			name:    "numeral string with whitespace",
			payload: `{"travelers": " 4 "}`,
			want:    4,
		},
		{
			name:    "non-numeric string",
			payload: `{"travelers": "two"}`,
			wantErr: true,
		},
		{
			name:    "fractional number",
			payload: `{"travelers": 2.5}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.CreateBookingRequest
			err := json.Unmarshal([]byte(tt.payload), &req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, int(req.Travelers))
			}
		})
	}
}

func TestCreateBookingRequest_ToModel_RejectsMalformedDate(t *testing.T) {
	req := dto.CreateBookingRequest{
		PackageID:     "package:1",
		Name:          "Aisha",
		Email:         "aisha@example.com",
		Phone:         "+60123456789",
		Travelers:     2,
		DepartureDate: "next tuesday",
	}

	_, err := req.ToModel("booking:1", time.Now())

	assert.Error(t, err)
}
