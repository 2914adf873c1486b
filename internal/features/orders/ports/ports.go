package ports

import (
	"context"

	"cargo-tracker/internal/core/auth"
	noticedomain "cargo-tracker/internal/features/notices/domain"
	"cargo-tracker/internal/features/orders/domain"
)

// OrderService is the primary port used by the HTTP handlers and the importer.
type OrderService interface {
	// Track is the public single-order lookup.
	Track(ctx context.Context, ref string) (*domain.TrackingView, error)
	// Get resolves ref and enforces phone scoping for non-staff callers.
	Get(ctx context.Context, p *auth.Principal, ref string) (*domain.Order, error)
	// ListByPhone lists orders for phone; "self" means the caller's own phone.
	ListByPhone(ctx context.Context, p *auth.Principal, phone string) ([]domain.Order, error)
	List(ctx context.Context, filter domain.ListFilter) (*domain.OrderPage, error)
	Stats(ctx context.Context) (*domain.Stats, error)
	Create(ctx context.Context, p *auth.Principal, in domain.CreateOrderInput) (*domain.Order, error)
	// CreateMany persists every input in one transaction.
	CreateMany(ctx context.Context, p *auth.Principal, in []domain.CreateOrderInput) ([]domain.Order, error)
	Transition(ctx context.Context, p *auth.Principal, id string, in domain.TransitionInput) (*domain.Order, error)
	Update(ctx context.Context, p *auth.Principal, id string, in domain.UpdateOrderInput) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

// OrderRepository is the persistence port. Lookups return (nil, nil) when nothing matches.
type OrderRepository interface {
	// Transaction runs fn against a repository bound to a single transaction.
	// Returning an error from fn rolls everything back.
	Transaction(ctx context.Context, fn func(tx OrderRepository) error) error

	FindByID(ctx context.Context, id string) (*domain.Order, error)
	// FindByReference matches orderId or packageId, newest order date first.
	FindByReference(ctx context.Context, ref string) (*domain.Order, error)
	ListByPhone(ctx context.Context, phone string) ([]domain.Order, error)
	List(ctx context.Context, filter domain.ListFilter) ([]domain.Order, int64, error)
	Stats(ctx context.Context) (*domain.Stats, error)
	// OrderIDTaken reports whether another order (not excludeID) already uses orderID.
	OrderIDTaken(ctx context.Context, orderID, excludeID string) (bool, error)

	// Create inserts the order with its history and details.
	Create(ctx context.Context, order *domain.Order) error
	// Save writes the order's own columns; history and details are untouched.
	Save(ctx context.Context, order *domain.Order) error
	AppendHistory(ctx context.Context, orderID string, entry *domain.StatusHistory) error
	SaveDetails(ctx context.Context, details *domain.OrderDetails) error
	DeleteDetails(ctx context.Context, orderID string) error
	// Delete removes the order, its history and its details.
	Delete(ctx context.Context, id string) (bool, error)
}

// TrackingCache holds recently tracked orders keyed by lookup reference.
type TrackingCache interface {
	Get(ctx context.Context, ref string) (*domain.Order, error)
	Set(ctx context.Context, ref string, order *domain.Order) error
	Invalidate(ctx context.Context, refs ...string) error
}

// Notifier receives confirmed status changes.
type Notifier interface {
	StatusChanged(ctx context.Context, event domain.StatusChanged) error
}

// NoticeProvider supplies delivery notices shown with a tracked order.
type NoticeProvider interface {
	ForStatus(ctx context.Context, status string) ([]noticedomain.Notice, error)
}
