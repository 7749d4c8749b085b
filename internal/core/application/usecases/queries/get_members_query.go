package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

// GetMembersLimit caps the number of members returned by one query.
const GetMembersLimit = 1000

var ErrGetMembersQueryIsNotConstructed = errors.New(
	"GetMembersQuery must be created via NewGetMembersQuery constructor",
)

// GetMembersQuery lists registered members by name.
type GetMembersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMembersQuery() GetMembersQuery {
	return GetMembersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMembersQuery) Validate() error {
	return q.guard.Validate(ErrGetMembersQueryIsNotConstructed)
}

type GetMembersQueryResponse struct {
	ID      kernel.UUID
	Name    string
	Address kernel.Address
}
