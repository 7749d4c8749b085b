package http

import (
	"time"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"

	"github.com/samber/lo"
)

// Error is the body of every non-2xx response produced by the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Address struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}

type NewMember struct {
	Name    string  `json:"name"`
	Address Address `json:"address"`
}

// NewItem carries the price as a decimal string; Currency falls back to the
// configured default when empty.
type NewItem struct {
	Name          string `json:"name"`
	Price         string `json:"price"`
	Currency      string `json:"currency,omitempty"`
	StockQuantity int    `json:"stockQuantity"`
}

type NewOrder struct {
	MemberID string `json:"memberId"`
	ItemID   string `json:"itemId"`
	Count    int    `json:"count"`
}

type Member struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address Address `json:"address"`
}

type Created struct {
	ID string `json:"id"`
}

type OrderLine struct {
	ItemName   string `json:"itemName"`
	OrderPrice string `json:"orderPrice"`
	Count      int    `json:"count"`
}

type Order struct {
	ID             string      `json:"id"`
	MemberName     string      `json:"memberName"`
	Status         string      `json:"status"`
	OrderedAt      time.Time   `json:"orderedAt"`
	DeliveryStatus string      `json:"deliveryStatus"`
	Address        Address     `json:"address"`
	TotalPrice     string      `json:"totalPrice"`
	Currency       string      `json:"currency"`
	Lines          []OrderLine `json:"lines"`
}

func toMember(m queries.GetMembersQueryResponse, _ int) Member {
	return Member{
		ID:      m.ID.String(),
		Name:    m.Name,
		Address: toAddress(m.Address),
	}
}

func toAddress(a kernel.Address) Address {
	return Address{
		City:    a.City(),
		Street:  a.Street(),
		Zipcode: a.Zipcode(),
	}
}

func toOrder(r queries.SearchOrdersQueryResponse, _ int) Order {
	return Order{
		ID:             r.ID.String(),
		MemberName:     r.MemberName,
		Status:         r.Status.String(),
		OrderedAt:      r.OrderedAt,
		DeliveryStatus: r.DeliveryStatus.String(),
		Address:        toAddress(r.Address),
		TotalPrice: r.TotalPrice.Amount().String(),
		Currency:   r.TotalPrice.Currency().String(),
		Lines: lo.Map(r.Lines, func(l queries.SearchOrdersQueryLine, _ int) OrderLine {
			return OrderLine{
				ItemName:   l.ItemName,
				OrderPrice: l.OrderPrice.Amount().String(),
				Count:      l.Count,
			}
		}),
	}
}
