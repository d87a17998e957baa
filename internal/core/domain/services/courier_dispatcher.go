package services

import (
	"errors"

	"bottleshop/internal/core/domain/model/account"
	"bottleshop/internal/core/domain/model/order"
)

// ErrCourierNotFound is returned when no courier can take a handed-over item:
// either no candidates were supplied or none of them is verified.
var ErrCourierNotFound = errors.New("courier not found")

// CourierCandidate pairs a courier account with the number of line items the
// courier is currently carrying (handed over, not yet delivered).
type CourierCandidate struct {
	Courier     *account.Account
	ActiveItems int
}

// CourierDispatcher is a domain service that assigns handed-over line items
// to couriers. Selection favors the verified courier with the fewest items in
// flight, spreading load across the fleet.
type CourierDispatcher struct{}

// NewCourierDispatcher creates a CourierDispatcher.
func NewCourierDispatcher() CourierDispatcher {
	return CourierDispatcher{}
}

// Dispatch picks the best candidate for the item and assigns it.
//
// Rules:
//   - the item must be valid and handed over
//   - only verified courier accounts are considered
//   - the candidate with the fewest active items wins; first wins on ties
//
// Returns ErrCourierNotFound when no candidate qualifies.
func (d CourierDispatcher) Dispatch(item *order.Item, candidates []CourierCandidate) (*account.Account, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}

	best, err := d.findBestCourier(candidates)
	if err != nil {
		return nil, err
	}

	if err = item.AssignCourier(best.ID()); err != nil {
		return nil, err
	}

	return best, nil
}

func (d CourierDispatcher) findBestCourier(candidates []CourierCandidate) (*account.Account, error) {
	var best *account.Account
	bestLoad := 0

	for _, candidate := range candidates {
		courier := candidate.Courier
		if err := courier.Validate(); err != nil {
			return nil, err
		}

		if courier.Role() != account.RoleCourier || !courier.IsVerified() {
			continue
		}

		if best == nil || candidate.ActiveItems < bestLoad {
			best = courier
			bestLoad = candidate.ActiveItems
		}
	}

	if best == nil {
		return nil, ErrCourierNotFound
	}
	return best, nil
}
