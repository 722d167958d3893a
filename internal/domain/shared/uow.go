package shared

import "context"

// UnitOfWork runs a function within a single storage transaction. Repository
// calls made with the context passed to fn share that transaction; fn
// returning an error rolls everything back.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}

// NoOpUnitOfWork executes the function directly without transactional
// semantics. Used in tests with in-memory repositories.
type NoOpUnitOfWork struct{}

// Execute runs fn with the given context
func (NoOpUnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
