package pgtest

import (
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// NewMember builds a member with a fake address. An empty name is replaced
// by a fake one.
func NewMember(name string) (*member.Member, error) {
	if name == "" {
		name = gofakeit.Name()
	}

	addr, err := kernel.NewAddress(gofakeit.City(), gofakeit.Street(), gofakeit.Zip())
	if err != nil {
		return nil, err
	}

	return member.NewMember(kernel.NewUUID(), name, addr)
}

// NewItem builds an item priced in KRW.
func NewItem(name string, price int64, stock int) (*item.Item, error) {
	money, err := kernel.NewMoney(decimal.NewFromInt(price), currency.KRW)
	if err != nil {
		return nil, err
	}

	return item.NewItem(kernel.NewUUID(), name, money, stock)
}
