package services

import (
	"time"

	"cabin-backoffice/models"
)

// dateOnly truncates a timestamp to midnight UTC so stays compare by calendar
// day regardless of the time of day they were recorded with.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NumNights counts whole nights between two dates. Time of day is ignored.
func NumNights(start, end time.Time) int {
	return int(dateOnly(end).Sub(dateOnly(start)).Hours() / 24)
}

// DeriveStatus maps a stay's date range onto its lifecycle status relative to
// the given reference day:
//
//	end strictly in the past            -> checked-out
//	started in the past, still running  -> checked-in
//	anything else                       -> unconfirmed
//
// A stay that ends today counts as still running; one that starts today has
// not checked in yet.
func DeriveStatus(start, end, today time.Time) string {
	s, e, ref := dateOnly(start), dateOnly(end), dateOnly(today)

	switch {
	case e.Before(ref):
		return models.StatusCheckedOut
	case s.Before(ref):
		return models.StatusCheckedIn
	default:
		return models.StatusUnconfirmed
	}
}
