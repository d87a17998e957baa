package order

import (
	"errors"
	"fmt"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not created through
	// NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrItemNameIsRequired is returned when the denormalized product name is empty.
	ErrItemNameIsRequired = errs.NewValueIsRequiredError("item name")

	// ErrItemNotHandedOver is returned when a courier operation targets an item
	// that is still with the vendor.
	ErrItemNotHandedOver = errs.NewValueIsInvalidError("item is not handed over")

	// ErrNoCourierAssigned is returned when a courier operation targets an item
	// with no assigned courier.
	ErrNoCourierAssigned = errs.NewValueIsRequiredError("item has no assigned courier")
)

// Item is a line item within an order. It snapshots the referenced product at
// placement time (name, image, price, vendor) and carries the four
// independent fulfillment status machines.
//
// Item is an entity owned by the Order aggregate; all mutations go through
// the methods below, which enforce caller authority and transition
// preconditions.
type Item struct {
	// id uniquely identifies the line item
	id kernel.UUID
	// productID references the catalog entry the item was built from
	productID kernel.UUID
	// vendorID is denormalized at placement so vendor-scoped reads and
	// authority checks never re-fetch the product
	vendorID kernel.UUID
	// courierID is the assigned courier (nil until dispatch)
	courierID *kernel.UUID
	// name, imageURL and price snapshot the product for display
	name     string
	imageURL string
	price    kernel.Money
	// quantity is the ordered unit count (positive)
	quantity int

	vendorStatus   VendorStatus
	handoverStatus HandoverStatus
	courierStatus  CourierStatus
	deliveryStatus DeliveryStatus

	isConstructed bool
}

// NewItem creates a line item in the initial (all pending) state.
// The product snapshot fields must be valid; imageURL may be empty.
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	vendorID kernel.UUID,
	name string,
	imageURL string,
	price kernel.Money,
	quantity int,
) (*Item, error) {
	item := &Item{
		vendorStatus:   VendorPending,
		handoverStatus: HandoverPending,
		courierStatus:  CourierPending,
		deliveryStatus: DeliveryPending,
		isConstructed:  true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setVendorID(vendorID),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	item.imageURL = imageURL
	return item, nil
}

// RestoreItem reconstructs a line item from persistence, including its
// status fields and courier assignment.
func RestoreItem(
	id kernel.UUID,
	productID kernel.UUID,
	vendorID kernel.UUID,
	courierID *kernel.UUID,
	name string,
	imageURL string,
	price kernel.Money,
	quantity int,
	vendorStatus VendorStatus,
	handoverStatus HandoverStatus,
	courierStatus CourierStatus,
	deliveryStatus DeliveryStatus,
) (*Item, error) {
	item, err := NewItem(id, productID, vendorID, name, imageURL, price, quantity)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		vendorStatus.Validate(),
		handoverStatus.Validate(),
		courierStatus.Validate(),
		deliveryStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err = courierID.Validate(); err != nil {
			return nil, err
		}
	}

	item.vendorStatus = vendorStatus
	item.handoverStatus = handoverStatus
	item.courierStatus = courierStatus
	item.deliveryStatus = deliveryStatus
	item.courierID = courierID
	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the referenced catalog entry's identifier.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// VendorID returns the owning vendor's identifier.
func (i *Item) VendorID() kernel.UUID {
	return i.vendorID
}

// Courier returns the assigned courier's identifier, or nil.
func (i *Item) Courier() *kernel.UUID {
	return i.courierID
}

// Name returns the denormalized product name.
func (i *Item) Name() string {
	return i.name
}

// ImageURL returns the denormalized product image URL.
func (i *Item) ImageURL() string {
	return i.imageURL
}

// Price returns the denormalized unit price.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Quantity returns the ordered unit count.
func (i *Item) Quantity() int {
	return i.quantity
}

// VendorStatus returns the vendor's acceptance decision.
func (i *Item) VendorStatus() VendorStatus {
	return i.vendorStatus
}

// HandoverStatus returns the vendor-to-courier handoff state.
func (i *Item) HandoverStatus() HandoverStatus {
	return i.handoverStatus
}

// CourierStatus returns the courier's acceptance decision.
func (i *Item) CourierStatus() CourierStatus {
	return i.courierStatus
}

// DeliveryStatus returns the delivery completion state.
func (i *Item) DeliveryStatus() DeliveryStatus {
	return i.deliveryStatus
}

// AcceptByVendor records the vendor's acceptance of the item.
// The caller must be the vendor the item belongs to, and the decision is
// frozen once the item has been handed over.
func (i *Item) AcceptByVendor(vendorID kernel.UUID) error {
	if err := i.authorizeVendor(vendorID); err != nil {
		return err
	}

	newStatus, err := i.vendorStatus.Accept()
	if err != nil {
		return err
	}

	i.vendorStatus = newStatus
	return nil
}

// RejectByVendor records the vendor's rejection of the item, under the same
// authority and freeze rules as AcceptByVendor.
func (i *Item) RejectByVendor(vendorID kernel.UUID) error {
	if err := i.authorizeVendor(vendorID); err != nil {
		return err
	}

	newStatus, err := i.vendorStatus.Reject()
	if err != nil {
		return err
	}

	i.vendorStatus = newStatus
	return nil
}

// HandOver passes the item to the delivery side. The caller must be the
// owning vendor and the item must be vendor-accepted.
func (i *Item) HandOver(vendorID kernel.UUID) error {
	if err := i.authorizeVendor(vendorID); err != nil {
		return err
	}

	if i.vendorStatus != VendorAccepted {
		return errs.NewValueIsInvalidErrorWithCause("handover",
			fmt.Errorf("item must be accepted before handover, vendor status is %s", i.vendorStatus))
	}

	newStatus, err := i.handoverStatus.HandOver()
	if err != nil {
		return err
	}

	i.handoverStatus = newStatus
	return nil
}

// AssignCourier attaches a courier to a handed-over item. Reassignment is
// allowed while the courier decision is still pending or rejected.
func (i *Item) AssignCourier(courierID kernel.UUID) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if err := courierID.Validate(); err != nil {
		return err
	}

	if i.handoverStatus != HandedOver {
		return ErrItemNotHandedOver
	}

	if i.courierStatus == CourierAccepted || i.deliveryStatus == Delivered {
		return errs.NewConflictErrorWithCause("courier assignment",
			fmt.Errorf("item is already being delivered by courier %s", i.courierID))
	}

	i.courierID = &courierID
	i.courierStatus = CourierPending
	return nil
}

// AcceptByCourier records the assigned courier's acceptance of a handed-over
// item.
func (i *Item) AcceptByCourier(courierID kernel.UUID) error {
	if err := i.authorizeCourier(courierID); err != nil {
		return err
	}

	newStatus, err := i.courierStatus.Accept()
	if err != nil {
		return err
	}

	i.courierStatus = newStatus
	return nil
}

// RejectByCourier records the assigned courier's rejection of a handed-over
// item. The item becomes eligible for reassignment.
func (i *Item) RejectByCourier(courierID kernel.UUID) error {
	if err := i.authorizeCourier(courierID); err != nil {
		return err
	}

	newStatus, err := i.courierStatus.Reject()
	if err != nil {
		return err
	}

	i.courierStatus = newStatus
	return nil
}

// Deliver marks the item as delivered. The caller must be the assigned
// courier and must have accepted the item; delivering twice is a conflict.
func (i *Item) Deliver(courierID kernel.UUID) error {
	if err := i.authorizeCourier(courierID); err != nil {
		return err
	}

	if i.courierStatus != CourierAccepted {
		return errs.NewValueIsInvalidErrorWithCause("delivery",
			fmt.Errorf("item must be courier-accepted before delivery, courier status is %s", i.courierStatus))
	}

	newStatus, err := i.deliveryStatus.Deliver()
	if err != nil {
		return err
	}

	i.deliveryStatus = newStatus
	return nil
}

func (i *Item) authorizeVendor(vendorID kernel.UUID) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if err := vendorID.Validate(); err != nil {
		return err
	}

	if !i.vendorID.IsEqual(vendorID) {
		return errs.NewUnauthorizedErrorWithCause("vendor",
			fmt.Errorf("item %s does not belong to vendor %s", i.id, vendorID))
	}

	if i.handoverStatus == HandedOver {
		return errs.NewConflictErrorWithCause("vendor decision",
			fmt.Errorf("item %s is already handed over", i.id))
	}

	return nil
}

func (i *Item) authorizeCourier(courierID kernel.UUID) error {
	if err := i.Validate(); err != nil {
		return err
	}
	if err := courierID.Validate(); err != nil {
		return err
	}

	if i.handoverStatus != HandedOver {
		return ErrItemNotHandedOver
	}

	if i.courierID == nil {
		return ErrNoCourierAssigned
	}

	if !i.courierID.IsEqual(courierID) {
		return errs.NewUnauthorizedErrorWithCause("courier",
			fmt.Errorf("item %s is not assigned to courier %s", i.id, courierID))
	}

	if i.deliveryStatus == Delivered {
		return errs.NewConflictErrorWithCause("courier decision",
			fmt.Errorf("item %s is already delivered", i.id))
	}

	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	i.vendorID = vendorID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return ErrItemNameIsRequired
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}
