package statemachine

import (
	"errors"

	"tastekart/models"
)

// AllStatuses lists every status an order can carry, in lifecycle order.
var AllStatuses = []models.OrderStatus{
	models.StatusValidating,
	models.StatusPending,
	models.StatusReceived,
	models.StatusPreparing,
	models.StatusDelivered,
	models.StatusCancelled,
}

var statusSet = func() map[models.OrderStatus]bool {
	m := make(map[models.OrderStatus]bool, len(AllStatuses))
	for _, s := range AllStatuses {
		m[s] = true
	}
	return m
}()

// allowed is the transition table. The machine is deliberately open: the
// owning restaurant may move an order between any two recognized
// statuses, including out of delivered/cancelled. A stricter table can
// be swapped in here without touching callers.
var allowed = func() map[models.OrderStatus]map[models.OrderStatus]bool {
	m := make(map[models.OrderStatus]map[models.OrderStatus]bool, len(AllStatuses))
	for _, from := range AllStatuses {
		m[from] = make(map[models.OrderStatus]bool, len(AllStatuses))
		for _, to := range AllStatuses {
			m[from][to] = true
		}
	}
	return m
}()

var ErrUnknownStatus = errors.New("unrecognized order status")

// Recognized reports whether s is one of the six order statuses.
func Recognized(s models.OrderStatus) bool {
	return statusSet[s]
}

// CanTransition checks whether an order may move from one status to
// another. Both statuses must be recognized; beyond that the open table
// decides.
func CanTransition(from, to models.OrderStatus) error {
	if !statusSet[from] || !statusSet[to] {
		return ErrUnknownStatus
	}
	if !allowed[from][to] {
		return errors.New("transition " + string(from) + " to " + string(to) + " is not allowed")
	}
	return nil
}

// NextStatuses returns the statuses reachable from the given one.
func NextStatuses(from models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, to := range AllStatuses {
		if to != from && allowed[from][to] {
			nexts = append(nexts, to)
		}
	}
	return nexts
}
