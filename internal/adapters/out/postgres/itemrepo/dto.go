// Package itemrepo provides the GORM persistence of items.
package itemrepo

import (
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO represents the database structure for persisting items.
// Stock can never be stored negative.
type ItemDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Price         decimal.Decimal `gorm:"type:numeric(19,4);not null"`
	Currency      string          `gorm:"type:char(3);not null"`
	StockQuantity int             `gorm:"type:int;not null;check:stock_quantity >= 0"`
}

// TableName specifies the database table name for item entities.
func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(it *item.Item) ItemDTO {
	return ItemDTO{
		ID:            it.ID().Bytes(),
		Name:          it.Name(),
		Price:         it.Price().Amount(),
		Currency:      it.Price().Currency().String(),
		StockQuantity: it.StockQuantity(),
	}
}

// ToMoney rebuilds a money value from an amount column and an ISO currency column.
func ToMoney(amount decimal.Decimal, code string) (kernel.Money, error) {
	cur, err := kernel.ParseCurrency(code)
	if err != nil {
		return kernel.Money{}, err
	}
	return kernel.NewMoney(amount, cur)
}

// ToDomain converts a loaded item row into the domain aggregate.
func ToDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := ToMoney(dto.Price, dto.Currency)
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(id, dto.Name, price, dto.StockQuantity)
}
