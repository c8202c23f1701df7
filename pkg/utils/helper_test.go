package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "1", want: 1},
		{in: " 42 ", want: 42},
		{in: "9223372036854775807", want: 9223372036854775807},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "0", wantErr: true},
		{in: "-3", wantErr: true},
		{in: "1.5", wantErr: true},
		{in: "12abc", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseID(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 3, ParseInt("3", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 10, ParseInt("ten", 10))
	assert.Equal(t, 10, ParseInt("0", 10))
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 3, CalculateTotalPages(22, 10))
	assert.Equal(t, 2, CalculateTotalPages(20, 10))
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
}
