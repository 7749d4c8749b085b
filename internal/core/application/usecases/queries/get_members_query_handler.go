package queries

import (
	"context"

	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMembersQueryHandler reads members straight from the members table.
//
// Example:
//
//	handler := NewGetMembersQueryHandler(db)
//
//	members, err := handler.Handle(ctx, NewGetMembersQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Found %d members\n", len(members))
type GetMembersQueryHandler struct {
	db *gorm.DB
}

func NewGetMembersQueryHandler(db *gorm.DB) GetMembersQueryHandler {
	return GetMembersQueryHandler{db: db}
}

// Handle returns at most GetMembersLimit members sorted by name, then id.
// The result is never nil.
func (h GetMembersQueryHandler) Handle(
	ctx context.Context,
	query GetMembersQuery,
) ([]GetMembersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	members := make([]GetMembersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address_city,
			address_street,
			address_zipcode
		FROM members
		ORDER BY name, id
		LIMIT ?
	`, GetMembersLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			m                     GetMembersQueryResponse
			id                    uuid.UUID
			city, street, zipcode string
		)

		if err = rows.Scan(&id, &m.Name, &city, &street, &zipcode); err != nil {
			return nil, err
		}

		if m.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if m.Address, err = kernel.NewAddress(city, street, zipcode); err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
