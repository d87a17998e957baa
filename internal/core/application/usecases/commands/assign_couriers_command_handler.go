package commands

import (
	"context"
	"errors"

	"bottleshop/internal/core/domain/model/order"
	"bottleshop/internal/core/domain/services"
)

var (
	ErrNoFreeCouriersFound = errors.New("no free couriers found")
	ErrNoWaitingItemsFound = errors.New("no items awaiting courier")
)

// AssignCouriersCommandHandler orchestrates the courier assignment process.
// Finds handed-over items without an accepted courier and matches each one
// with the least loaded free verified courier.
//
// Example:
//
//	handler := NewAssignCouriersCommandHandler(uowFactory)
//	cmd := NewAssignCouriersCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoWaitingItemsFound):
//	    log.Println("Nothing to assign")
//	case errors.Is(err, ErrNoFreeCouriersFound):
//	    log.Println("All couriers are busy")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignCouriersCommandHandler struct {
	uowFactory OrderAccountUoWFactory
}

// NewAssignCouriersCommandHandler creates a handler for courier assignment.
// Requires an OrderAccountUoWFactory for coordinating updates across
// orders and courier accounts.
func NewAssignCouriersCommandHandler(uowFactory OrderAccountUoWFactory) AssignCouriersCommandHandler {
	return AssignCouriersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command. Items already assigned and
// awaiting a courier decision are left alone; items rejected by their
// courier go back into the pool and get a fresh assignment.
func (h AssignCouriersCommandHandler) Handle(ctx context.Context, command AssignCouriersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	accountRepo := uow.AccountRepository()

	orders, err := orderRepo.GetAllAwaitingCourier(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return ErrNoWaitingItemsFound
	}

	candidates, err := accountRepo.GetCourierCandidates(ctx)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return ErrNoFreeCouriersFound
	}

	dispatcher := services.NewCourierDispatcher()
	assigned := 0

	for _, aggregate := range orders {
		for _, item := range aggregate.Items() {
			if !needsCourier(item) {
				continue
			}

			courier, dispatchErr := dispatcher.Dispatch(item, candidates)
			if errors.Is(dispatchErr, services.ErrCourierNotFound) {
				continue
			}
			if dispatchErr != nil {
				return dispatchErr
			}

			for i := range candidates {
				if candidates[i].Courier.ID().IsEqual(courier.ID()) {
					candidates[i].ActiveItems++
				}
			}

			if err = orderRepo.UpdateItem(ctx, aggregate, item.ID()); err != nil {
				return err
			}
			assigned++
		}
	}

	if assigned == 0 {
		return ErrNoFreeCouriersFound
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// needsCourier reports whether the item is waiting for a courier assignment:
// handed over, not delivered, and either never assigned or rejected by the
// previously assigned courier.
func needsCourier(item *order.Item) bool {
	if item.HandoverStatus() != order.HandedOver {
		return false
	}
	if item.DeliveryStatus() != order.DeliveryPending {
		return false
	}
	if item.CourierStatus() == order.CourierAccepted {
		return false
	}
	if item.Courier() != nil && item.CourierStatus() == order.CourierPending {
		return false
	}
	return true
}
