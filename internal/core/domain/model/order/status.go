package order

import (
	"fmt"

	"bottleshop/internal/pkg/errs"
)

// VendorStatus is the vendor's acceptance decision for a line item.
//
// State transitions:
//
//	VendorPending ──┬──> VendorAccepted
//	                └──> VendorRejected
//
// The vendor may revise the decision between accepted and rejected until the
// item is handed over; after handover the decision is frozen by the Item.
type VendorStatus int

const (
	// VendorUnknown represents an invalid or undefined vendor status.
	VendorUnknown VendorStatus = iota

	// VendorPending is the initial status: the vendor has not decided yet.
	VendorPending

	// VendorAccepted indicates the vendor accepted the item for fulfillment.
	VendorAccepted

	// VendorRejected indicates the vendor declined the item.
	VendorRejected
)

func vendorStatusStrings() map[VendorStatus]string {
	return map[VendorStatus]string{
		VendorUnknown:  "Unknown",
		VendorPending:  "Pending",
		VendorAccepted: "Accepted",
		VendorRejected: "Rejected",
	}
}

// Validate checks that the status is one of the defined decision values.
func (s VendorStatus) Validate() error {
	if s != VendorPending && s != VendorAccepted && s != VendorRejected {
		return errs.NewValueIsInvalidErrorWithCause("vendor status",
			fmt.Errorf("%d is not a valid vendor status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s VendorStatus) String() string {
	if str, ok := vendorStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Accept transitions the status to VendorAccepted.
func (s VendorStatus) Accept() (VendorStatus, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return VendorAccepted, nil
}

// Reject transitions the status to VendorRejected.
func (s VendorStatus) Reject() (VendorStatus, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return VendorRejected, nil
}

// HandoverStatus is the vendor-to-courier handoff state of a line item.
//
// State transitions:
//
//	HandoverPending ──> HandedOver
//
// HandedOver is final.
type HandoverStatus int

const (
	// HandoverUnknown represents an invalid or undefined handover status.
	HandoverUnknown HandoverStatus = iota

	// HandoverPending is the initial status: the item is still with the vendor.
	HandoverPending

	// HandedOver indicates the vendor passed the item to a courier.
	HandedOver
)

func handoverStatusStrings() map[HandoverStatus]string {
	return map[HandoverStatus]string{
		HandoverUnknown: "Unknown",
		HandoverPending: "Pending",
		HandedOver:      "HandedOver",
	}
}

// Validate checks that the status is one of the defined handover values.
func (s HandoverStatus) Validate() error {
	if s != HandoverPending && s != HandedOver {
		return errs.NewValueIsInvalidErrorWithCause("handover status",
			fmt.Errorf("%d is not a valid handover status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s HandoverStatus) String() string {
	if str, ok := handoverStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// HandOver transitions the status to HandedOver. Only valid from
// HandoverPending; handing over twice is a conflict.
func (s HandoverStatus) HandOver() (HandoverStatus, error) {
	if s != HandoverPending {
		return 0, errs.NewConflictErrorWithCause("handover status",
			fmt.Errorf("%s is not a valid status to hand over from", s.String()))
	}
	return HandedOver, nil
}

// CourierStatus is the courier's acceptance decision for a handed-over item.
//
// State transitions:
//
//	CourierPending ──┬──> CourierAccepted
//	                 └──> CourierRejected
//
// The courier may revise the decision until the item is delivered.
type CourierStatus int

const (
	// CourierUnknown represents an invalid or undefined courier status.
	CourierUnknown CourierStatus = iota

	// CourierPending is the initial status: no courier decision yet.
	CourierPending

	// CourierAccepted indicates the courier accepted the item for transport.
	CourierAccepted

	// CourierRejected indicates the courier declined the item.
	CourierRejected
)

func courierStatusStrings() map[CourierStatus]string {
	return map[CourierStatus]string{
		CourierUnknown:  "Unknown",
		CourierPending:  "Pending",
		CourierAccepted: "Accepted",
		CourierRejected: "Rejected",
	}
}

// Validate checks that the status is one of the defined decision values.
func (s CourierStatus) Validate() error {
	if s != CourierPending && s != CourierAccepted && s != CourierRejected {
		return errs.NewValueIsInvalidErrorWithCause("courier status",
			fmt.Errorf("%d is not a valid courier status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s CourierStatus) String() string {
	if str, ok := courierStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Accept transitions the status to CourierAccepted.
func (s CourierStatus) Accept() (CourierStatus, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return CourierAccepted, nil
}

// Reject transitions the status to CourierRejected.
func (s CourierStatus) Reject() (CourierStatus, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return CourierRejected, nil
}

// DeliveryStatus is the delivery completion state of a line item.
//
// State transitions:
//
//	DeliveryPending ──> Delivered
//
// Delivered is final. An item may only become Delivered while the courier
// decision is CourierAccepted; the Item enforces that precondition.
type DeliveryStatus int

const (
	// DeliveryUnknown represents an invalid or undefined delivery status.
	DeliveryUnknown DeliveryStatus = iota

	// DeliveryPending is the initial status: the item is not delivered yet.
	DeliveryPending

	// Delivered indicates the item reached the customer.
	Delivered
)

func deliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryUnknown: "Unknown",
		DeliveryPending: "Pending",
		Delivered:       "Delivered",
	}
}

// Validate checks that the status is one of the defined delivery values.
func (s DeliveryStatus) Validate() error {
	if s != DeliveryPending && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("delivery status",
			fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s DeliveryStatus) String() string {
	if str, ok := deliveryStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Deliver transitions the status to Delivered. Only valid from
// DeliveryPending; delivering twice is a conflict.
func (s DeliveryStatus) Deliver() (DeliveryStatus, error) {
	if s != DeliveryPending {
		return 0, errs.NewConflictErrorWithCause("delivery status",
			fmt.Errorf("%s is not a valid status to deliver from", s.String()))
	}
	return Delivered, nil
}

// PaymentStatus is the payment state of the whole order.
//
// State transitions:
//
//	PaymentPending ──┬──> PaymentPaid
//	                 └──> PaymentCashOnDelivery
//
// Both outcomes are final: payment details are recorded exactly once.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending is the initial status at order placement.
	PaymentPending

	// PaymentPaid indicates an online payment was recorded.
	PaymentPaid

	// PaymentCashOnDelivery indicates the customer pays on delivery.
	PaymentCashOnDelivery
)

func paymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:        "Unknown",
		PaymentPending:        "Pending",
		PaymentPaid:           "Paid",
		PaymentCashOnDelivery: "CashOnDelivery",
	}
}

// Validate checks that the status is one of the defined payment values.
func (s PaymentStatus) Validate() error {
	if s != PaymentPending && s != PaymentPaid && s != PaymentCashOnDelivery {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s PaymentStatus) String() string {
	if str, ok := paymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Settle transitions the status from PaymentPending to the given outcome.
// Settling an already settled payment is a conflict.
func (s PaymentStatus) Settle(outcome PaymentStatus) (PaymentStatus, error) {
	if outcome != PaymentPaid && outcome != PaymentCashOnDelivery {
		return 0, errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%s is not a valid payment outcome", outcome.String()))
	}
	if s != PaymentPending {
		return 0, errs.NewConflictErrorWithCause("payment status",
			fmt.Errorf("payment is already %s", s.String()))
	}
	return outcome, nil
}
