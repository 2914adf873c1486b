package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"cargo-tracker/internal/core/apperr"
	"cargo-tracker/internal/core/auth"
	"cargo-tracker/internal/core/logger"
	"cargo-tracker/internal/features/orders/domain"
	"cargo-tracker/internal/features/orders/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SelfPhone is the phone listing token that means "the caller's own phone".
const SelfPhone = "self"

var (
	// ErrOrderNotFound is returned when no order matches under any lookup scheme.
	ErrOrderNotFound = apperr.NotFound("Order not found")
	// ErrMalformedID is returned before touching the store when an id is not a UUID.
	ErrMalformedID = apperr.Validation("Invalid order id")
	// ErrEmptyReference is returned when a lookup string is blank.
	ErrEmptyReference = apperr.Validation("Order reference is required")
	// ErrInvalidStatus is returned for values outside the status enum.
	ErrInvalidStatus = apperr.Validation("Invalid order status")
	// ErrInvalidSize is returned for values outside the size categories.
	ErrInvalidSize = apperr.Validation("Invalid size category")
	// ErrMissingIdentifiers is returned when orderId or packageId is blank.
	ErrMissingIdentifiers = apperr.Validation("orderId and packageId are required")
	// ErrNegativeQuantity mirrors domain.ErrNegativeQuantity for callers.
	ErrNegativeQuantity = apperr.Validation("Quantities must not be negative")
	// ErrNegativePrice mirrors domain.ErrNegativePrice for callers.
	ErrNegativePrice = apperr.Validation("Prices must not be negative")
	// ErrEmptyBatch is returned by CreateMany when there is nothing to create.
	ErrEmptyBatch = apperr.Validation("No orders to create")
	// ErrOrderIDTaken is returned when another order already uses the orderId.
	ErrOrderIDTaken = apperr.Conflict("Order id is already in use")
	// ErrNotAuthenticated is returned when a principal is required but absent.
	ErrNotAuthenticated = apperr.Unauthenticated("Authentication required")
	// ErrPhoneMismatch is returned when a plain user reads someone else's orders.
	ErrPhoneMismatch = apperr.Forbidden("You can only view orders linked to your phone number")
	// ErrPhoneRequired is returned when the phone listing gets a blank phone.
	ErrPhoneRequired = apperr.Validation("Phone number is required")
	// ErrNoPhoneOnFile is returned for "self" when the caller has no phone number.
	ErrNoPhoneOnFile = apperr.Validation("No phone number on file for this account")
	// ErrNoOrdersForPhone is returned when a phone number has no orders.
	ErrNoOrdersForPhone = apperr.NotFound("No orders found for this phone number")
)

// OrderServiceImpl implements ports.OrderService.
type OrderServiceImpl struct {
	repo     ports.OrderRepository
	cache    ports.TrackingCache
	notifier ports.Notifier
	notices  ports.NoticeProvider
	now      func() time.Time
}

// Option configures an OrderServiceImpl.
type Option func(*OrderServiceImpl)

// WithTrackingCache enables cache-aside reads for public tracking.
func WithTrackingCache(c ports.TrackingCache) Option {
	return func(s *OrderServiceImpl) { s.cache = c }
}

// WithNotifier receives committed status changes.
func WithNotifier(n ports.Notifier) Option {
	return func(s *OrderServiceImpl) { s.notifier = n }
}

// WithNotices attaches delivery notices to tracking views.
func WithNotices(p ports.NoticeProvider) Option {
	return func(s *OrderServiceImpl) { s.notices = p }
}

// WithClock overrides the server clock used for history timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *OrderServiceImpl) { s.now = now }
}

// NewOrderService creates a new OrderServiceImpl.
func NewOrderService(repo ports.OrderRepository, opts ...Option) *OrderServiceImpl {
	s := &OrderServiceImpl{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Track is the public lookup. It never fails because of the cache or notices.
func (s *OrderServiceImpl) Track(ctx context.Context, ref string) (*domain.TrackingView, error) {
	ref = strings.TrimSpace(ref)

	order, err := s.tracked(ctx, ref)
	if err != nil {
		return nil, err
	}

	view := domain.NewTrackingView(order)
	if s.notices != nil {
		notices, err := s.notices.ForStatus(ctx, string(order.Status))
		if err != nil {
			logger.Get().Warn("Failed to load notices for tracking view",
				zap.String("ref", ref), zap.Error(err))
		} else if notices != nil {
			view.Notices = notices
		}
	}
	return view, nil
}

func (s *OrderServiceImpl) tracked(ctx context.Context, ref string) (*domain.Order, error) {
	if s.cache != nil && ref != "" {
		cached, err := s.cache.Get(ctx, ref)
		if err != nil {
			logger.Get().Warn("Tracking cache read failed", zap.String("ref", ref), zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	order, err := s.resolve(ctx, s.repo, ref)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, ref, order); err != nil {
			logger.Get().Warn("Tracking cache write failed", zap.String("ref", ref), zap.Error(err))
		}
	}
	return order, nil
}

// resolve tries the internal id first when ref is id-shaped, then orderId/packageId.
func (s *OrderServiceImpl) resolve(ctx context.Context, repo ports.OrderRepository, ref string) (*domain.Order, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrEmptyReference
	}

	if isID(ref) {
		order, err := repo.FindByID(ctx, ref)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if order != nil {
			return order, nil
		}
	}

	order, err := repo.FindByReference(ctx, ref)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// Get resolves ref for an authenticated caller. Plain users only see their own orders.
func (s *OrderServiceImpl) Get(ctx context.Context, p *auth.Principal, ref string) (*domain.Order, error) {
	if p == nil {
		return nil, ErrNotAuthenticated
	}

	order, err := s.resolve(ctx, s.repo, ref)
	if err != nil {
		return nil, err
	}

	if !p.IsStaff() && (p.PhoneNumber == "" || order.PhoneNumber != p.PhoneNumber) {
		return nil, ErrPhoneMismatch
	}
	return order, nil
}

// ListByPhone lists the orders linked to phone, newest first.
func (s *OrderServiceImpl) ListByPhone(ctx context.Context, p *auth.Principal, phone string) ([]domain.Order, error) {
	if p == nil {
		return nil, ErrNotAuthenticated
	}

	phone = strings.TrimSpace(phone)
	if strings.EqualFold(phone, SelfPhone) {
		if p.PhoneNumber == "" {
			return nil, ErrNoPhoneOnFile
		}
		phone = p.PhoneNumber
	}
	if phone == "" {
		return nil, ErrPhoneRequired
	}

	if !p.IsStaff() && phone != p.PhoneNumber {
		return nil, ErrPhoneMismatch
	}

	orders, err := s.repo.ListByPhone(ctx, phone)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(orders) == 0 {
		return nil, ErrNoOrdersForPhone
	}
	return orders, nil
}

// List returns one page of the staff listing.
func (s *OrderServiceImpl) List(ctx context.Context, filter domain.ListFilter) (*domain.OrderPage, error) {
	if filter.Status != "" {
		status, ok := domain.ParseStatus(string(filter.Status))
		if !ok {
			return nil, ErrInvalidStatus
		}
		filter.Status = status
	}
	filter.Query = strings.TrimSpace(filter.Query)
	filter.Normalize()

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &domain.OrderPage{
		Items:    items,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// Stats returns dashboard counters.
func (s *OrderServiceImpl) Stats(ctx context.Context) (*domain.Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return stats, nil
}

// Create persists a single order with its first history entry.
func (s *OrderServiceImpl) Create(ctx context.Context, p *auth.Principal, in domain.CreateOrderInput) (*domain.Order, error) {
	orders, err := s.CreateMany(ctx, p, []domain.CreateOrderInput{in})
	if err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// CreateMany validates every input up front, then writes them all in one transaction.
func (s *OrderServiceImpl) CreateMany(ctx context.Context, p *auth.Principal, in []domain.CreateOrderInput) ([]domain.Order, error) {
	if len(in) == 0 {
		return nil, ErrEmptyBatch
	}

	now := s.now()
	orders := make([]*domain.Order, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, item := range in {
		order, err := s.newOrder(p, item, now)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[order.OrderID]; dup {
			return nil, ErrOrderIDTaken
		}
		seen[order.OrderID] = struct{}{}
		orders = append(orders, order)
	}

	err := s.repo.Transaction(ctx, func(tx ports.OrderRepository) error {
		for _, order := range orders {
			taken, err := tx.OrderIDTaken(ctx, order.OrderID, "")
			if err != nil {
				return err
			}
			if taken {
				return ErrOrderIDTaken
			}
			if err := tx.Create(ctx, order); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	out := make([]domain.Order, 0, len(orders))
	refs := make([]string, 0, 2*len(orders))
	for _, order := range orders {
		out = append(out, *order)
		refs = append(refs, order.OrderID, order.PackageID)
	}
	s.invalidate(ctx, refs...)

	logger.Get().Info("Orders created", zap.Int("count", len(out)), zap.String("by", principalID(p)))
	return out, nil
}

func (s *OrderServiceImpl) newOrder(p *auth.Principal, in domain.CreateOrderInput, now time.Time) (*domain.Order, error) {
	orderID := strings.TrimSpace(in.OrderID)
	packageID := strings.TrimSpace(in.PackageID)
	if orderID == "" || packageID == "" {
		return nil, ErrMissingIdentifiers
	}

	status := domain.OrderStatusInWarehouse
	if in.Status != "" {
		parsed, ok := domain.ParseStatus(string(in.Status))
		if !ok {
			return nil, ErrInvalidStatus
		}
		status = parsed
	}

	size := domain.SizeUndefined
	if in.SizeCategory != "" {
		if !in.SizeCategory.IsValid() {
			return nil, ErrInvalidSize
		}
		size = in.SizeCategory
	}

	if in.Details != nil {
		if err := validateDetails(*in.Details); err != nil {
			return nil, err
		}
	}

	createdAt := now
	if in.CreatedAt != nil && !in.CreatedAt.IsZero() {
		createdAt = in.CreatedAt.UTC()
	}
	stampedAt := now
	if in.BackfillHistory && createdAt.Before(now) {
		stampedAt = createdAt
	}

	order := &domain.Order{
		ID:           uuid.NewString(),
		OrderID:      orderID,
		PackageID:    packageID,
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		Status:       status,
		SizeCategory: size,
		IsShipped:    in.IsShipped,
		IsDamaged:    in.IsDamaged,
		Note:         in.Note,
		CreatedAt:    createdAt,
		UpdatedAt:    now,
		StatusHistory: []domain.StatusHistory{{
			ID:         uuid.NewString(),
			Status:     status,
			Timestamp:  stampedAt,
			EmployeeID: employeeID(p),
		}},
	}
	if order.IsDamaged {
		order.DamageDescription = in.DamageDescription
	}

	if domain.PlanDetails(order.IsShipped, in.Details, false) == domain.DetailsUpsert {
		details := &domain.OrderDetails{ID: uuid.NewString(), OrderID: order.ID}
		in.Details.Apply(details)
		order.OrderDetails = details
	}

	return order, nil
}

// Transition moves an order to in.Status, appending history only when the status changes.
func (s *OrderServiceImpl) Transition(ctx context.Context, p *auth.Principal, id string, in domain.TransitionInput) (*domain.Order, error) {
	target, ok := domain.ParseStatus(string(in.Status))
	if !ok {
		return nil, ErrInvalidStatus
	}

	return s.mutate(ctx, p, id, func(ports.OrderRepository, *domain.Order) (domain.OrderStatus, error) {
		return target, nil
	})
}

// Update applies a full-order edit, the status transition and the details lifecycle atomically.
func (s *OrderServiceImpl) Update(ctx context.Context, p *auth.Principal, id string, in domain.UpdateOrderInput) (*domain.Order, error) {
	var target *domain.OrderStatus
	if in.Status != nil {
		parsed, ok := domain.ParseStatus(string(*in.Status))
		if !ok {
			return nil, ErrInvalidStatus
		}
		target = &parsed
	}
	if in.SizeCategory != nil && !in.SizeCategory.IsValid() {
		return nil, ErrInvalidSize
	}
	if in.OrderID != nil {
		trimmed := strings.TrimSpace(*in.OrderID)
		if trimmed == "" {
			return nil, ErrMissingIdentifiers
		}
		in.OrderID = &trimmed
	}
	if in.PackageID != nil {
		trimmed := strings.TrimSpace(*in.PackageID)
		if trimmed == "" {
			return nil, ErrMissingIdentifiers
		}
		in.PackageID = &trimmed
	}
	if in.Details != nil {
		if err := validateDetails(*in.Details); err != nil {
			return nil, err
		}
	}

	return s.mutate(ctx, p, id, func(tx ports.OrderRepository, order *domain.Order) (domain.OrderStatus, error) {
		if in.OrderID != nil && *in.OrderID != order.OrderID {
			taken, err := tx.OrderIDTaken(ctx, *in.OrderID, order.ID)
			if err != nil {
				return "", err
			}
			if taken {
				return "", ErrOrderIDTaken
			}
		}

		in.Apply(order)

		switch domain.PlanDetails(order.IsShipped, in.Details, order.OrderDetails != nil) {
		case domain.DetailsUpsert:
			details := order.OrderDetails
			if details == nil {
				details = &domain.OrderDetails{ID: uuid.NewString(), OrderID: order.ID}
			}
			in.Details.Apply(details)
			if err := tx.SaveDetails(ctx, details); err != nil {
				return "", err
			}
		case domain.DetailsDelete:
			if err := tx.DeleteDetails(ctx, order.ID); err != nil {
				return "", err
			}
		}

		if target != nil {
			return *target, nil
		}
		return order.Status, nil
	})
}

// editFunc changes order inside the transaction and returns the status it should end in.
type editFunc func(tx ports.OrderRepository, order *domain.Order) (domain.OrderStatus, error)

// mutate is the single writer for existing orders: load with history, edit, save,
// append history when the status changed, commit, then reload.
func (s *OrderServiceImpl) mutate(ctx context.Context, p *auth.Principal, id string, edit editFunc) (*domain.Order, error) {
	if !isID(id) {
		return nil, ErrMalformedID
	}

	var (
		staleRefs []string
		event     *domain.StatusChanged
	)

	err := s.repo.Transaction(ctx, func(tx ports.OrderRepository) error {
		order, err := tx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		staleRefs = []string{order.ID, order.OrderID, order.PackageID}
		from, _ := order.LatestStatus()

		target, err := edit(tx, order)
		if err != nil {
			return err
		}

		changed := order.StatusChanged(target)
		order.Status = target
		if err := tx.Save(ctx, order); err != nil {
			return err
		}

		if changed {
			entry := &domain.StatusHistory{
				ID:         uuid.NewString(),
				Status:     target,
				Timestamp:  order.NextHistoryTime(s.now()),
				EmployeeID: employeeID(p),
			}
			if err := tx.AppendHistory(ctx, order.ID, entry); err != nil {
				return err
			}
			event = &domain.StatusChanged{
				ID:          order.ID,
				OrderID:     order.OrderID,
				PackageID:   order.PackageID,
				PhoneNumber: order.PhoneNumber,
				From:        from,
				To:          target,
				At:          entry.Timestamp,
				EmployeeID:  entry.EmployeeID,
			}
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	s.invalidate(ctx, append(staleRefs, order.OrderID, order.PackageID)...)
	if event != nil {
		s.notify(ctx, *event)
	}
	return order, nil
}

// Delete removes an order with its history and details.
func (s *OrderServiceImpl) Delete(ctx context.Context, id string) error {
	if !isID(id) {
		return ErrMalformedID
	}

	var refs []string
	err := s.repo.Transaction(ctx, func(tx ports.OrderRepository) error {
		order, err := tx.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		refs = []string{order.ID, order.OrderID, order.PackageID}

		deleted, err := tx.Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrOrderNotFound
		}
		return nil
	})
	if err != nil {
		return classify(err)
	}

	s.invalidate(ctx, refs...)
	logger.Get().Info("Order deleted", zap.String("id", id))
	return nil
}

func (s *OrderServiceImpl) invalidate(ctx context.Context, refs ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, refs...); err != nil {
		logger.Get().Warn("Tracking cache invalidation failed", zap.Strings("refs", refs), zap.Error(err))
	}
}

func (s *OrderServiceImpl) notify(ctx context.Context, event domain.StatusChanged) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.StatusChanged(ctx, event); err != nil {
		logger.Get().Warn("Status change notification failed",
			zap.String("order_id", event.OrderID),
			zap.String("status", string(event.To)),
			zap.Error(err),
		)
	}
}

func validateDetails(in domain.DetailsInput) error {
	err := in.Validate()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNegativeQuantity):
		return ErrNegativeQuantity
	case errors.Is(err, domain.ErrNegativePrice):
		return ErrNegativePrice
	default:
		return apperr.Validation(err.Error())
	}
}

// classify keeps classified errors and turns everything else into an internal error.
func classify(err error) error {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return err
	}
	return apperr.Internal(err)
}

// isID reports whether s has the shape of an internal order id.
func isID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func employeeID(p *auth.Principal) string {
	if p.IsStaff() {
		return p.ID
	}
	return ""
}

func principalID(p *auth.Principal) string {
	if p == nil {
		return ""
	}
	return p.ID
}
