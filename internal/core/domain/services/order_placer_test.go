package services_test

import (
	"testing"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"
	"shop/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/text/currency"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
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

	money, err := kernel.NewMoney(decimal.NewFromInt(price), currency.KRW)
	require.NoError(t, err)
	it, err := item.NewItem(kernel.NewUUID(), name, money, stock)
	require.NoError(t, err)
	return it
}

func TestOrderPlacer_Place(t *testing.T) {
	placer := services.NewOrderPlacer()

	t.Run("should place order for two books", func(t *testing.T) {
		kim := newMember(t)
		book := newItem(t, "Book", 10000, 10)

		o, err := placer.Place(kim, book, 2)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Ordered, o.Status())
		assert.Same(t, kim, o.Member())
		assert.Equal(t, order.DeliveryReady, o.Delivery().Status())
		assert.True(t, o.Delivery().Address().IsEqual(kim.Address()))
		require.Len(t, o.Lines(), 1)
		assert.Equal(t, 2, o.Lines()[0].Count())
		assert.Equal(t, "20000", o.TotalPrice().Amount().String())
		assert.Equal(t, 8, book.StockQuantity())
	})

	t.Run("should fail for more chairs than in stock", func(t *testing.T) {
		chair := newItem(t, "Chair", 50000, 1)

		o, err := placer.Place(newMember(t), chair, 5)

		assert.Nil(t, o)
		require.ErrorIs(t, err, item.ErrInsufficientStock)
		assert.Equal(t, 1, chair.StockQuantity())
	})

	t.Run("should reject non-positive count", func(t *testing.T) {
		book := newItem(t, "Book", 10000, 10)

		_, err := placer.Place(newMember(t), book, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 10, book.StockQuantity())
	})

	t.Run("should reject missing member and item", func(t *testing.T) {
		_, err := placer.Place(nil, nil, 1)

		require.ErrorIs(t, err, member.ErrMemberIsNotConstructed)
		require.ErrorIs(t, err, item.ErrItemIsNotConstructed)
	})
}
