package utils

import (
	"ccsed-client/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConvertReservationResponse_CreatedAt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Time
	}{
		{"RFC3339 With Millis", "2026-03-01T09:30:00.123Z", time.Date(2026, 3, 1, 9, 30, 0, 123000000, time.UTC)},
		{"RFC3339", "2026-03-01T09:30:00Z", time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)},
		{"No Zone", "2026-03-01T09:30:00", time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)},
		{"Date Only", "2026-03-01", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"Empty", "", time.Time{}},
		{"Garbage", "yesterday", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reservation := ConvertReservationResponse(responses.Reservation{ID: "r1", CreatedAt: tt.value})
			assert.True(t, tt.expected.Equal(reservation.CreatedAt), "got %v", reservation.CreatedAt)
		})
	}
}
