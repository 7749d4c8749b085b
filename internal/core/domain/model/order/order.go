package order

import (
	"errors"
	"fmt"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrEmptyOrder is returned when an order is built without any lines.
	ErrEmptyOrder = errs.NewValueIsRequiredError("order lines")

	// ErrDeliveryCompleted is the cause attached to the IllegalStateError returned
	// when cancelling an order whose goods were already delivered.
	ErrDeliveryCompleted = errors.New("cannot cancel a completed delivery")
)

// Order is the aggregate root of a purchase. It owns one Delivery and an ordered,
// non-empty list of OrderLines, and references (without owning) the Member who
// placed it and the Items on its lines.
//
// Order follows these invariants:
//   - status moves only from Ordered to Cancelled
//   - lines are fixed at construction and share one currency
//   - the total price is derived from the lines and never stored
//
// Order is not safe for concurrent use; each command loads its own copy.
type Order struct {
	id        kernel.UUID
	member    *member.Member
	delivery  *Delivery
	lines     []*OrderLine
	status    Status
	orderedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder places an order for member with the given delivery and lines.
// The order starts in the Ordered status, stamped with the current time.
//
// The lines are expected to come from NewOrderLine, so their stock is
// already reserved. When NewOrder fails the caller is responsible for
// cancelling them; see services.OrderPlacer.
//
// Example:
//
//	delivery, _ := order.NewDelivery(kernel.NewUUID(), kim.Address())
//	line, _ := order.NewOrderLine(kernel.NewUUID(), book, book.Price(), 2)
//	o, err := order.NewOrder(kernel.NewUUID(), kim, delivery, line)
func NewOrder(id kernel.UUID, m *member.Member, delivery *Delivery, lines ...*OrderLine) (*Order, error) {
	return RestoreOrder(id, m, delivery, Ordered, time.Now().UTC(), lines...)
}

// RestoreOrder rebuilds an order loaded from storage with its persisted status
// and timestamp.
func RestoreOrder(
	id kernel.UUID,
	m *member.Member,
	delivery *Delivery,
	status Status,
	orderedAt time.Time,
	lines ...*OrderLine,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setMember(m),
		o.setDelivery(delivery),
		o.setStatus(status),
		o.setOrderedAt(orderedAt),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Member returns the member who placed the order.
func (o *Order) Member() *member.Member {
	return o.member
}

// Delivery returns the delivery owned by the order.
func (o *Order) Delivery() *Delivery {
	return o.delivery
}

// Lines returns the order lines in their original sequence.
// The returned slice is a copy; the lines themselves are shared.
func (o *Order) Lines() []*OrderLine {
	lines := make([]*OrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// OrderedAt returns the UTC time the order was placed.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// TotalPrice sums the subtotals of all lines. It is recomputed on every call
// and does not depend on the status, so a cancelled order keeps its total.
func (o *Order) TotalPrice() kernel.Money {
	total := kernel.ZeroMoney(o.lines[0].OrderPrice().Currency())
	for _, line := range o.lines {
		total = total.MustAdd(line.Subtotal())
	}
	return total
}

// Cancel cancels the order and returns every line's count to stock.
//
// Business rules:
//   - only an Ordered order can be cancelled
//   - an order whose delivery is completed cannot be cancelled
//
// Returns:
//   - nil on success; the status is Cancelled and every item got its count back
//   - errs.IllegalStateError if the order is already cancelled or delivered
//   - the stock error of the failing line otherwise
//
// Violations leave the order and the items untouched. If returning stock
// fails for some line, the lines that were already restored are reserved
// again and the status goes back to Ordered before the error is returned.
//
// Example:
//
//	if err := o.Cancel(); errors.Is(err, errs.ErrIllegalState) {
//	    // already cancelled, or the goods are on their way
//	}
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	if o.delivery.IsCompleted() {
		return errs.NewIllegalStateErrorWithCause("delivery", o.delivery.Status().String(), ErrDeliveryCompleted)
	}

	previous := o.status
	o.status = newStatus

	for i, line := range o.lines {
		if err = line.Cancel(); err != nil {
			o.status = previous
			return errors.Join(
				fmt.Errorf("cancel line %s: %w", line.ID(), err),
				o.reserveLines(o.lines[:i]),
			)
		}
	}

	return nil
}

func (o *Order) reserveLines(lines []*OrderLine) error {
	var joined error
	for _, line := range lines {
		if err := line.reserveAgain(); err != nil {
			joined = errors.Join(joined, fmt.Errorf("reserve line %s again: %w", line.ID(), err))
		}
	}
	return joined
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setMember(m *member.Member) error {
	if err := m.Validate(); err != nil {
		return err
	}
	o.member = m
	return nil
}

func (o *Order) setDelivery(delivery *Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	o.delivery = delivery
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setOrderedAt(orderedAt time.Time) error {
	if orderedAt.IsZero() {
		return errs.NewValueIsRequiredError("ordered at")
	}
	o.orderedAt = orderedAt
	return nil
}

func (o *Order) setLines(lines []*OrderLine) error {
	if len(lines) == 0 {
		return ErrEmptyOrder
	}

	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
	}

	cur := lines[0].OrderPrice().Currency()
	for _, line := range lines[1:] {
		if line.OrderPrice().Currency() != cur {
			return fmt.Errorf("%w: order lines in %s and %s",
				kernel.ErrCurrencyMismatch, cur, line.OrderPrice().Currency())
		}
	}

	o.lines = make([]*OrderLine, len(lines))
	copy(o.lines, lines)
	return nil
}
