// Package ports defines the contracts between the shop domain and its
// infrastructure: repositories, the unit of work and the event publisher.
package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
)

// MemberRepository defines the persistence contract for members.
type MemberRepository interface {
	// Add persists a new member.
	Add(ctx context.Context, m *member.Member) error

	// Get retrieves a member by identifier.
	// Returns errs.ObjectNotFoundError when no member exists.
	Get(ctx context.Context, id kernel.UUID) (*member.Member, error)

	// ExistsByName reports whether a member with exactly this name is registered.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
