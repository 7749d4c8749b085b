// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"fmt"
	"time"

	"shop/internal/adapters/out/postgres/itemrepo"
	"shop/internal/adapters/out/postgres/memberrepo"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The member is a belongs-to reference that is preloaded but never written
// through the order. Delivery and lines are owned and written explicitly.
type OrderDTO struct {
	ID        uuid.UUID            `gorm:"type:uuid;primaryKey"`
	MemberID  uuid.UUID            `gorm:"type:uuid;not null;index"`
	Member    memberrepo.MemberDTO `gorm:"foreignKey:MemberID"`
	Status    string               `gorm:"type:varchar(16);not null;index"`
	OrderedAt time.Time            `gorm:"type:timestamptz;not null;index"`
	Delivery  DeliveryDTO          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Lines     []OrderLineDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// DeliveryDTO represents the delivery owned by exactly one order.
type DeliveryDTO struct {
	ID      uuid.UUID             `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex"`
	Address memberrepo.AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Status  string                `gorm:"type:varchar(16);not null"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// OrderLineDTO represents one line of an order. Position keeps the original
// sequence of the lines; the item is a preloaded belongs-to reference.
type OrderLineDTO struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_order_lines_order_position"`
	Position   int              `gorm:"not null;uniqueIndex:idx_order_lines_order_position"`
	ItemID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	Item       itemrepo.ItemDTO `gorm:"foreignKey:ItemID"`
	OrderPrice decimal.Decimal  `gorm:"type:numeric(19,4);not null"`
	Currency   string           `gorm:"type:char(3);not null"`
	Count      int              `gorm:"not null;check:count > 0"`
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate into its rows. Referenced member and
// item rows are left empty; only their keys are set.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	delivery := aggregate.Delivery()

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for i, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:         line.ID().Bytes(),
			OrderID:    orderID,
			Position:   i,
			ItemID:     line.Item().ID().Bytes(),
			OrderPrice: line.OrderPrice().Amount(),
			Currency:   line.OrderPrice().Currency().String(),
			Count:      line.Count(),
		})
	}

	return OrderDTO{
		ID:        orderID,
		MemberID:  aggregate.Member().ID().Bytes(),
		Status:    aggregate.Status().String(),
		OrderedAt: aggregate.OrderedAt(),
		Delivery: DeliveryDTO{
			ID:      delivery.ID().Bytes(),
			OrderID: orderID,
			Address: memberrepo.FromAddress(delivery.Address()),
			Status:  delivery.Status().String(),
		},
		Lines: lines,
	}
}

// toDomain rebuilds the aggregate from preloaded rows. Lines referring to the
// same item share one *item.Item so stock changes are not lost.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	m, err := memberrepo.ToDomain(dto.Member)
	if err != nil {
		return nil, fmt.Errorf("order %s member: %w", id, err)
	}

	delivery, err := deliveryToDomain(dto.Delivery)
	if err != nil {
		return nil, fmt.Errorf("order %s delivery: %w", id, err)
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make(map[uuid.UUID]*item.Item, len(dto.Lines))
	lines := make([]*order.OrderLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := lineToDomain(lineDTO, items)
		if lineErr != nil {
			return nil, fmt.Errorf("order %s line %d: %w", id, lineDTO.Position, lineErr)
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, m, delivery, status, dto.OrderedAt, lines...)
}

func deliveryToDomain(dto DeliveryDTO) (*order.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	addr, err := memberrepo.ToAddress(dto.Address)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseDeliveryStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreDelivery(id, addr, status)
}

func lineToDomain(dto OrderLineDTO, items map[uuid.UUID]*item.Item) (*order.OrderLine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	it, ok := items[dto.ItemID]
	if !ok {
		it, err = itemrepo.ToDomain(dto.Item)
		if err != nil {
			return nil, err
		}
		items[dto.ItemID] = it
	}

	price, err := itemrepo.ToMoney(dto.OrderPrice, dto.Currency)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderLine(id, it, price, dto.Count)
}
