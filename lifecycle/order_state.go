// Package lifecycle holds the status-transition tables for orders and
// bookings. The tables are the authoritative definition: handlers never
// compare status strings themselves.
package lifecycle

import (
	"strings"

	"github.com/Ahnaf-17/hangoutz-restaurant-plus/utils"
)

type OrderStatus string

const (
	OrderPlaced    OrderStatus = "placed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

var orderStatuses = []OrderStatus{
	OrderPlaced, OrderPreparing, OrderReady, OrderCompleted, OrderCancelled,
}

// ParseOrderStatus maps an untrusted string onto the closed status set.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	for _, st := range orderStatuses {
		if OrderStatus(s) == st {
			return st, true
		}
	}
	return "", false
}

// orderTransitions is intentionally permissive: every non-terminal status
// may move to any status, backward moves included (ready -> placed is
// legal). completed and cancelled have no outgoing pairs at all. Whether
// backward moves should survive is an open product question; until it is
// answered the table preserves the behavior as-is.
var orderTransitions = []struct{ From, To OrderStatus }{
	{OrderPlaced, OrderPlaced},
	{OrderPlaced, OrderPreparing},
	{OrderPlaced, OrderReady},
	{OrderPlaced, OrderCompleted},
	{OrderPlaced, OrderCancelled},

	{OrderPreparing, OrderPlaced},
	{OrderPreparing, OrderPreparing},
	{OrderPreparing, OrderReady},
	{OrderPreparing, OrderCompleted},
	{OrderPreparing, OrderCancelled},

	{OrderReady, OrderPlaced},
	{OrderReady, OrderPreparing},
	{OrderReady, OrderReady},
	{OrderReady, OrderCompleted},
	{OrderReady, OrderCancelled},
}

type orderKey struct{ from, to OrderStatus }

var orderTransitionMap = func() map[orderKey]bool {
	m := make(map[orderKey]bool, len(orderTransitions))
	for _, t := range orderTransitions {
		m[orderKey{t.From, t.To}] = true
	}
	return m
}()

// Terminal reports whether no transition leaves the status.
func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// NextOrderStatuses returns the statuses reachable from `from`, in table
// order.
func NextOrderStatuses(from OrderStatus) []OrderStatus {
	var next []OrderStatus
	seen := map[OrderStatus]bool{}
	for _, t := range orderTransitions {
		if t.From == from && !seen[t.To] {
			next = append(next, t.To)
			seen[t.To] = true
		}
	}
	return next
}

// CanTransitionOrder validates a status change against the table.
func CanTransitionOrder(from, to OrderStatus) error {
	if orderTransitionMap[orderKey{from, to}] {
		return nil
	}
	return utils.InvalidTransitionError(
		"order cannot move from '%s' to '%s'; valid next statuses: %s",
		from, to, describeOrderNext(from))
}

func describeOrderNext(from OrderStatus) string {
	next := NextOrderStatuses(from)
	if len(next) == 0 {
		return "none (terminal status)"
	}
	parts := make([]string, len(next))
	for i, s := range next {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
