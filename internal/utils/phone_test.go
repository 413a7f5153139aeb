package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhoneNumber(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "e164", input: "+27821234567", want: "+27821234567"},
		{name: "local leading zero", input: "0821234567", want: "+27821234567"},
		{name: "country code no plus", input: "27821234567", want: "+27821234567"},
		{name: "spaces and dashes", input: "082 123-4567", want: "+27821234567"},
		{name: "07x range", input: "0731234567", want: "+27731234567"},
		{name: "06x range", input: "0651234567", want: "+27651234567"},
		{name: "too short", input: "08212345", wantErr: true},
		{name: "too long", input: "082123456789", wantErr: true},
		{name: "landline range", input: "0211234567", wantErr: true},
		{name: "letters", input: "notaphone", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			valid, normalized, err := ValidatePhoneNumber(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				assert.False(t, valid)
				return
			}
			assert.NoError(t, err)
			assert.True(t, valid)
			assert.Equal(t, tc.want, normalized)
		})
	}
}
