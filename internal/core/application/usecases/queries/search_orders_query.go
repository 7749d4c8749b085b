// Package queries contains read-only use cases that bypass the domain model
// and read flat views straight from the database.
package queries

import (
	"errors"
	"strings"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

// SearchOrdersLimit caps the number of orders a single search returns.
const SearchOrdersLimit = 1000

var (
	ErrSearchOrdersQueryIsNotConstructed = errors.New(
		"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
	)
)

// SearchOrdersQuery filters orders by status and member name. Both filters
// are optional; an empty query returns the first SearchOrdersLimit orders.
//
// Example:
//
//	query, err := NewSearchOrdersQuery("ORDER", "kim")
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type SearchOrdersQuery struct {
	status     order.Status
	memberName string
	guard      guard.ConstructorGuard
}

// NewSearchOrdersQuery creates a search query. status must be a known order
// status name when given; memberName is matched as a substring.
func NewSearchOrdersQuery(status string, memberName string) (SearchOrdersQuery, error) {
	q := SearchOrdersQuery{
		memberName: strings.TrimSpace(memberName),
		guard:      guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(status) != "" {
		parsed, err := order.ParseStatus(status)
		if err != nil {
			return SearchOrdersQuery{}, err
		}
		q.status = parsed
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

// Status returns the status filter, order.Unknown when unfiltered.
func (q SearchOrdersQuery) Status() order.Status {
	return q.status
}

func (q SearchOrdersQuery) MemberName() string {
	return q.memberName
}

// SearchOrdersQueryResponse is a flat view of one order.
type SearchOrdersQueryResponse struct {
	ID             kernel.UUID
	MemberName     string
	Status         order.Status
	OrderedAt      time.Time
	DeliveryStatus order.DeliveryStatus
	Address        kernel.Address
	TotalPrice     kernel.Money
	Lines          []SearchOrdersQueryLine
}

// SearchOrdersQueryLine is one line of a SearchOrdersQueryResponse.
type SearchOrdersQueryLine struct {
	ItemName   string
	OrderPrice kernel.Money
	Count      int
}
