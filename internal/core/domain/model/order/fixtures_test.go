package order_test

import (
	"testing"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func krw(t *testing.T, amount int64) kernel.Money {
	t.Helper()

	m, err := kernel.NewMoney(decimal.NewFromInt(amount), currency.KRW)
	require.NoError(t, err)
	return m
}

func newMember(t *testing.T) *member.Member {
	t.Helper()

	addr, err := kernel.NewAddress(gofakeit.City(), gofakeit.Street(), gofakeit.Zip())
	require.NoError(t, err)

	m, err := member.NewMember(kernel.NewUUID(), gofakeit.Name(), addr)
	require.NoError(t, err)
	return m
}

func newItem(t *testing.T, name string, price int64, stock int) *item.Item {
	t.Helper()

	it, err := item.NewItem(kernel.NewUUID(), name, krw(t, price), stock)
	require.NoError(t, err)
	return it
}

func newLine(t *testing.T, it *item.Item, count int) *order.OrderLine {
	t.Helper()

	line, err := order.NewOrderLine(kernel.NewUUID(), it, it.Price(), count)
	require.NoError(t, err)
	return line
}

func newDelivery(t *testing.T, m *member.Member) *order.Delivery {
	t.Helper()

	d, err := order.NewDelivery(kernel.NewUUID(), m.Address())
	require.NoError(t, err)
	return d
}

func newOrder(t *testing.T, lines ...*order.OrderLine) *order.Order {
	t.Helper()

	m := newMember(t)
	o, err := order.NewOrder(kernel.NewUUID(), m, newDelivery(t, m), lines...)
	require.NoError(t, err)
	return o
}
