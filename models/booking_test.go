package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func d(day int) time.Time {
	return time.Date(2026, 7, day, 0, 0, 0, 0, time.UTC)
}

func TestReservationOverlaps(t *testing.T) {
	res := Reservation{StartDate: d(10), EndDate: d(15)}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"identical interval", d(10), d(15), true},
		{"contained", d(11), d(13), true},
		{"containing", d(8), d(20), true},
		{"overlapping tail", d(13), d(18), true},
		{"overlapping head", d(8), d(12), true},
		{"touching at end is free", d(15), d(20), false},
		{"touching at start is free", d(5), d(10), false},
		{"disjoint after", d(20), d(25), false},
		{"disjoint before", d(1), d(5), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, res.Overlaps(tc.start, tc.end))
		})
	}
}

func TestFindReservation(t *testing.T) {
	b := Booking{Properties: []Reservation{
		{PropertyID: "a"},
		{PropertyID: "b"},
	}}

	found := b.FindReservation("b")
	assert.NotNil(t, found)
	assert.Equal(t, "b", found.PropertyID)

	// The pointer aliases the slice so callers can mutate in place.
	found.Status = StatusConfirmed
	assert.Equal(t, StatusConfirmed, b.Properties[1].Status)

	assert.Nil(t, b.FindReservation("missing"))
}
