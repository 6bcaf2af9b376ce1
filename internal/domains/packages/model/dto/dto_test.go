package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"safar/internal/domains/packages/model/dto"
	"safar/shared/validator"
)

func TestCreatePackageRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "complete body",
			payload: `{"title":"Umrah Reguler","description":"9 hari","type":"umrah","price":25000000,"imageUrl":"https://cdn.example.com/umrah.jpg"}`,
		},
		{
			// imageUrl is an opaque string, not necessarily a URL.
			name:    "relative image path",
			payload: `{"title":"Umrah Reguler","description":"9 hari","type":"umrah","price":25000000,"imageUrl":"images/umrah.jpg"}`,
		},
		{
			name:    "missing title",
			payload: `{"description":"9 hari","type":"umrah","price":25000000}`,
			wantErr: true,
		},
		{
			name:    "zero price",
			payload: `{"title":"Umrah Reguler","description":"9 hari","type":"umrah","price":0}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.CreatePackageRequest
			err := validator.Validate(strings.NewReader(tt.payload), &req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
