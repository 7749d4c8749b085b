package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a single command. The caller
// begins it, works through the repositories and then commits or rolls back.
type UnitOfWork interface {
	// Begin opens the transaction. Calling it again is a no-op.
	Begin(ctx context.Context) error

	// Commit makes all repository writes durable.
	// Fails when no transaction is open.
	Commit(ctx context.Context) error

	// Rollback discards all repository writes.
	// Fails when no transaction is open.
	Rollback(ctx context.Context) error

	MemberRepository() MemberRepository
	ItemRepository() ItemRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	// Orders it adds or updates are published once the transaction commits.
	OrderRepository() OrderRepository
}
