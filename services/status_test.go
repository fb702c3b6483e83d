package services

import (
	"testing"
	"time"

	"cabin-backoffice/models"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDeriveStatus(t *testing.T) {
	today := day("2024-06-10")

	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"ended in the past", "2024-06-01", "2024-06-05", models.StatusCheckedOut},
		{"currently staying", "2024-06-01", "2024-06-15", models.StatusCheckedIn},
		{"starts in the future", "2024-06-15", "2024-06-20", models.StatusUnconfirmed},
		{"ends today, started earlier", "2024-06-05", "2024-06-10", models.StatusCheckedIn},
		{"starts today", "2024-06-10", "2024-06-14", models.StatusUnconfirmed},
		{"ended yesterday", "2024-06-05", "2024-06-09", models.StatusCheckedOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(day(tt.start), day(tt.end), today))
		})
	}
}

func TestDeriveStatusIgnoresTimeOfDay(t *testing.T) {
	// A stay that ended "yesterday at 23:00" is still checked-out even when
	// the reference time is early morning.
	start := time.Date(2024, 6, 1, 14, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 9, 23, 0, 0, 0, time.UTC)
	today := time.Date(2024, 6, 10, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, models.StatusCheckedOut, DeriveStatus(start, end, today))
}

func TestNumNights(t *testing.T) {
	assert.Equal(t, 4, NumNights(day("2024-06-01"), day("2024-06-05")))
	assert.Equal(t, 0, NumNights(day("2024-06-05"), day("2024-06-05")))
	assert.Equal(t, -2, NumNights(day("2024-06-05"), day("2024-06-03")))
}
