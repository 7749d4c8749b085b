package queries

import (
	"context"
	"strings"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchOrdersQueryHandler reads orders straight from the database into flat
// responses. Totals are derived from the lines, nothing is read from a total column.
//
// Example:
//
//	handler := NewSearchOrdersQueryHandler(db)
//	query, _ := NewSearchOrdersQuery("", "kim")
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, o := range orders {
//	    fmt.Printf("%s %s %s\n", o.ID, o.MemberName, o.TotalPrice)
//	}
type SearchOrdersQueryHandler struct {
	db *gorm.DB
}

// NewSearchOrdersQueryHandler creates a handler for order searches.
func NewSearchOrdersQueryHandler(db *gorm.DB) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{db: db}
}

// Handle returns the matching orders sorted by order time, then id. The result
// is never nil.
func (h SearchOrdersQueryHandler) Handle(
	ctx context.Context,
	query SearchOrdersQuery,
) ([]SearchOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.findOrders(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	if err = h.attachLines(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (h SearchOrdersQueryHandler) findOrders(
	ctx context.Context,
	query SearchOrdersQuery,
) ([]SearchOrdersQueryResponse, error) {
	orders := make([]SearchOrdersQueryResponse, 0)

	tx := h.db.WithContext(ctx).
		Table("orders AS o").
		Select(`
			o.id,
			m.name,
			o.status,
			o.ordered_at,
			d.status,
			d.address_city,
			d.address_street,
			d.address_zipcode`).
		Joins("JOIN members AS m ON m.id = o.member_id").
		Joins("JOIN deliveries AS d ON d.order_id = o.id")

	if query.Status() != order.Unknown {
		tx = tx.Where("o.status = ?", query.Status().String())
	}
	if query.MemberName() != "" {
		tx = tx.Where("m.name LIKE ?", "%"+likeEscaper.Replace(query.MemberName())+"%")
	}

	rows, err := tx.Order("o.ordered_at, o.id").Limit(SearchOrdersLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp           SearchOrdersQueryResponse
			id             uuid.UUID
			status         string
			orderedAt      time.Time
			deliveryStatus string
			city           string
			street         string
			zipcode        string
		)

		err = rows.Scan(
			&id,
			&resp.MemberName,
			&status,
			&orderedAt,
			&deliveryStatus,
			&city,
			&street,
			&zipcode,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		if resp.DeliveryStatus, err = order.ParseDeliveryStatus(deliveryStatus); err != nil {
			return nil, err
		}
		if resp.Address, err = kernel.NewAddress(city, street, zipcode); err != nil {
			return nil, err
		}
		resp.OrderedAt = orderedAt.UTC()
		resp.Lines = make([]SearchOrdersQueryLine, 0)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachLines loads the lines of all given orders in one query and derives
// each order total from them.
func (h SearchOrdersQueryHandler) attachLines(ctx context.Context, orders []SearchOrdersQueryResponse) error {
	index := make(map[string]int, len(orders))
	ids := make([]string, 0, len(orders))
	for i, o := range orders {
		index[o.ID.String()] = i
		ids = append(ids, o.ID.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.order_id,
			i.name,
			l.order_price,
			l.currency,
			l.count
		FROM order_lines AS l
		JOIN items AS i ON i.id = l.item_id
		WHERE l.order_id IN ?
		ORDER BY l.order_id, l.position
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID  uuid.UUID
			line     SearchOrdersQueryLine
			price    decimal.Decimal
			currency string
		)

		if err = rows.Scan(&orderID, &line.ItemName, &price, &currency, &line.Count); err != nil {
			return err
		}

		cur, curErr := kernel.ParseCurrency(currency)
		if curErr != nil {
			return curErr
		}
		if line.OrderPrice, err = kernel.NewMoney(price, cur); err != nil {
			return err
		}

		i, ok := index[orderID.String()]
		if !ok {
			continue
		}
		orders[i].Lines = append(orders[i].Lines, line)
	}

	if err = rows.Err(); err != nil {
		return err
	}

	for i := range orders {
		total, totalErr := sumLines(orders[i].Lines)
		if totalErr != nil {
			return totalErr
		}
		orders[i].TotalPrice = total
	}

	return nil
}

func sumLines(lines []SearchOrdersQueryLine) (kernel.Money, error) {
	if len(lines) == 0 {
		return kernel.Money{}, nil
	}

	total := kernel.ZeroMoney(lines[0].OrderPrice.Currency())
	for _, line := range lines {
		subtotal, err := line.OrderPrice.Multiply(line.Count)
		if err != nil {
			return kernel.Money{}, err
		}
		if total, err = total.Add(subtotal); err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}
