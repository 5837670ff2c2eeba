package daterange_test

import (
	"testing"
	"time"

	"inn/shared/daterange"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMidnight(t *testing.T) {
	in := time.Date(2025, 1, 15, 14, 30, 45, 123, time.UTC)
	got := daterange.Midnight(in)

	want := date(2025, time.January, 15)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkin  time.Time
		checkout time.Time
		expected int
	}{
		{
			name:     "three nights",
			checkin:  date(2025, time.January, 1),
			checkout: date(2025, time.January, 4),
			expected: 3,
		},
		{
			name:     "single night",
			checkin:  date(2025, time.January, 1),
			checkout: date(2025, time.January, 2),
			expected: 1,
		},
		{
			name:     "time components are discarded",
			checkin:  time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC),
			checkout: time.Date(2025, 1, 4, 0, 1, 0, 0, time.UTC),
			expected: 3,
		},
		{
			name:     "across month boundary",
			checkin:  date(2025, time.January, 30),
			checkout: date(2025, time.February, 2),
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := daterange.Nights(tt.checkin, tt.checkout)
			if got != tt.expected {
				t.Errorf("expected %d nights, got %d", tt.expected, got)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		startA   time.Time
		endA     time.Time
		startB   time.Time
		endB     time.Time
		expected bool
	}{
		{
			name:     "checkout equals checkin does not overlap",
			startA:   date(2025, time.January, 1),
			endA:     date(2025, time.January, 3),
			startB:   date(2025, time.January, 3),
			endB:     date(2025, time.January, 5),
			expected: false,
		},
		{
			name:     "one shared night overlaps",
			startA:   date(2025, time.January, 1),
			endA:     date(2025, time.January, 4),
			startB:   date(2025, time.January, 3),
			endB:     date(2025, time.January, 5),
			expected: true,
		},
		{
			name:     "contained range overlaps",
			startA:   date(2025, time.January, 1),
			endA:     date(2025, time.January, 10),
			startB:   date(2025, time.January, 4),
			endB:     date(2025, time.January, 6),
			expected: true,
		},
		{
			name:     "disjoint ranges do not overlap",
			startA:   date(2025, time.January, 1),
			endA:     date(2025, time.January, 3),
			startB:   date(2025, time.January, 10),
			endB:     date(2025, time.January, 12),
			expected: false,
		},
		{
			name:     "reverse boundary does not overlap",
			startA:   date(2025, time.January, 3),
			endA:     date(2025, time.January, 5),
			startB:   date(2025, time.January, 1),
			endB:     date(2025, time.January, 3),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := daterange.Overlaps(tt.startA, tt.endA, tt.startB, tt.endB)
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
