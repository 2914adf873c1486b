package service

import (
	"context"

	"cargo-tracker/internal/core/apperr"
	"cargo-tracker/internal/core/auth"
	"cargo-tracker/internal/core/logger"
	"cargo-tracker/internal/features/imports/domain"
	"cargo-tracker/internal/features/imports/ports"

	"go.uber.org/zap"
)

// MaxRows bounds a single import batch.
const MaxRows = 5000

var (
	// ErrNoRows is returned when the upload has no rows.
	ErrNoRows = apperr.Validation("The spreadsheet has no rows")
	// ErrTooManyRows is returned when the upload exceeds MaxRows.
	ErrTooManyRows = apperr.Validation("The spreadsheet has too many rows")
)

// ImportServiceImpl implements ports.ImportService.
type ImportServiceImpl struct {
	orders ports.OrderCreator
}

// NewImportService creates a new ImportServiceImpl.
func NewImportService(orders ports.OrderCreator) *ImportServiceImpl {
	return &ImportServiceImpl{orders: orders}
}

// Import maps every row and creates the whole batch in one transaction.
func (s *ImportServiceImpl) Import(ctx context.Context, p *auth.Principal, rows []domain.Row) (*domain.Result, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	if len(rows) > MaxRows {
		return nil, ErrTooManyRows
	}

	orders, err := s.orders.CreateMany(ctx, p, domain.MapRows(rows))
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Spreadsheet imported", zap.Int("rows", len(rows)))
	return &domain.Result{Imported: len(orders), Orders: orders}, nil
}
