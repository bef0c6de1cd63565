package lifecycle

import (
	"strings"

	"github.com/Ahnaf-17/hangoutz-restaurant-plus/utils"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

var bookingStatuses = []BookingStatus{
	BookingPending, BookingConfirmed, BookingCancelled,
}

// ParseBookingStatus maps an untrusted string onto the closed status set.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	for _, st := range bookingStatuses {
		if BookingStatus(s) == st {
			return st, true
		}
	}
	return "", false
}

// Bookings are stricter than orders: pending may confirm or cancel,
// confirmed may cancel (or fall back to pending), cancelled is locked.
var bookingTransitions = []struct{ From, To BookingStatus }{
	{BookingPending, BookingPending},
	{BookingPending, BookingConfirmed},
	{BookingPending, BookingCancelled},

	{BookingConfirmed, BookingPending},
	{BookingConfirmed, BookingConfirmed},
	{BookingConfirmed, BookingCancelled},
}

type bookingKey struct{ from, to BookingStatus }

var bookingTransitionMap = func() map[bookingKey]bool {
	m := make(map[bookingKey]bool, len(bookingTransitions))
	for _, t := range bookingTransitions {
		m[bookingKey{t.From, t.To}] = true
	}
	return m
}()

// Terminal reports whether no transition leaves the status.
func (s BookingStatus) Terminal() bool {
	return s == BookingCancelled
}

// NextBookingStatuses returns the statuses reachable from `from`.
func NextBookingStatuses(from BookingStatus) []BookingStatus {
	var next []BookingStatus
	seen := map[BookingStatus]bool{}
	for _, t := range bookingTransitions {
		if t.From == from && !seen[t.To] {
			next = append(next, t.To)
			seen[t.To] = true
		}
	}
	return next
}

// CanTransitionBooking validates a status change against the table.
func CanTransitionBooking(from, to BookingStatus) error {
	if bookingTransitionMap[bookingKey{from, to}] {
		return nil
	}
	return utils.InvalidTransitionError(
		"booking cannot move from '%s' to '%s'; valid next statuses: %s",
		from, to, describeBookingNext(from))
}

func describeBookingNext(from BookingStatus) string {
	next := NextBookingStatuses(from)
	if len(next) == 0 {
		return "none (terminal status)"
	}
	parts := make([]string, len(next))
	for i, s := range next {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
