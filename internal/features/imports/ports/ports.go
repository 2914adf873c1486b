package ports

import (
	"context"

	"cargo-tracker/internal/core/auth"
	"cargo-tracker/internal/features/imports/domain"
	orderdomain "cargo-tracker/internal/features/orders/domain"
)

// ImportService is the primary port for bulk spreadsheet imports.
type ImportService interface {
	Import(ctx context.Context, p *auth.Principal, rows []domain.Row) (*domain.Result, error)
}

// OrderCreator persists a batch of new orders atomically.
type OrderCreator interface {
	CreateMany(ctx context.Context, p *auth.Principal, in []orderdomain.CreateOrderInput) ([]orderdomain.Order, error)
}
