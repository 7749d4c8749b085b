package order

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when validating a zero-value Delivery.
var ErrDeliveryIsNotConstructed = errs.NewValueIsRequiredError("delivery must be created via NewDelivery or RestoreDelivery")

// Delivery is the shipping record owned by exactly one order. It has no life
// of its own: it is created, saved and loaded together with its order.
type Delivery struct {
	id      kernel.UUID
	address kernel.Address
	status  DeliveryStatus

	guard guard.ConstructorGuard
}

// NewDelivery creates a READY delivery to address.
func NewDelivery(id kernel.UUID, address kernel.Address) (*Delivery, error) {
	return RestoreDelivery(id, address, DeliveryReady)
}

// RestoreDelivery rebuilds a delivery loaded from storage.
func RestoreDelivery(id kernel.UUID, address kernel.Address, status DeliveryStatus) (*Delivery, error) {
	d := &Delivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setAddress(address),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the delivery was created through NewDelivery or RestoreDelivery.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Address returns the shipping address copied from the member at order time.
func (d *Delivery) Address() kernel.Address {
	return d.address
}

// Status returns READY or COMP.
func (d *Delivery) Status() DeliveryStatus {
	return d.status
}

// IsCompleted reports whether the goods have already been delivered.
func (d *Delivery) IsCompleted() bool {
	return d.status == DeliveryCompleted
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	d.address = address
	return nil
}

func (d *Delivery) setStatus(status DeliveryStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
