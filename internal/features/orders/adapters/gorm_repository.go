package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cargo-tracker/internal/features/orders/domain"
	"cargo-tracker/internal/features/orders/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository with gorm.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Migrate creates or updates the orders tables.
func (r *GormOrderRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate orders schema: %w", err)
	}
	return nil
}

// Transaction implements ports.OrderRepository.
func (r *GormOrderRepository) Transaction(ctx context.Context, fn func(tx ports.OrderRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormOrderRepository{db: tx})
	})
}

// aggregate preloads history (oldest first) and details.
func (r *GormOrderRepository) aggregate(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at ASC").Order("seq ASC")
		}).
		Preload("OrderDetails")
}

// FindByID loads an order by its internal id.
func (r *GormOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var rec orderRecord
	err := r.aggregate(ctx).Where("id = ?", id).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find order %s: %w", id, err)
	}
	return rec.toDomain(), nil
}

// FindByReference loads the newest order whose orderId or packageId equals ref.
func (r *GormOrderRepository) FindByReference(ctx context.Context, ref string) (*domain.Order, error) {
	var recs []orderRecord
	err := r.aggregate(ctx).
		Where("order_id = ? OR package_id = ?", ref, ref).
		Order("created_at DESC").
		Limit(1).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find order by reference %s: %w", ref, err)
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return recs[0].toDomain(), nil
}

// ListByPhone returns every order linked to phone, newest first.
func (r *GormOrderRepository) ListByPhone(ctx context.Context, phone string) ([]domain.Order, error) {
	var recs []orderRecord
	err := r.aggregate(ctx).
		Where("phone_number = ?", phone).
		Order("created_at DESC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for phone: %w", err)
	}
	return toDomainList(recs), nil
}

// List returns one page of orders matching filter plus the total match count.
func (r *GormOrderRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Order, int64, error) {
	filter.Normalize()

	scope := func(db *gorm.DB) *gorm.DB {
		if filter.Status != "" {
			db = db.Where("status = ?", string(filter.Status))
		}
		if filter.PhoneNumber != "" {
			db = db.Where("phone_number = ?", filter.PhoneNumber)
		}
		if filter.Shipped != nil {
			db = db.Where("is_shipped = ?", *filter.Shipped)
		}
		if filter.Query != "" {
			like := filter.Query + "%"
			db = db.Where("(order_id LIKE ? OR package_id LIKE ?)", like, like)
		}
		return db
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&orderRecord{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var recs []orderRecord
	err := r.aggregate(ctx).
		Scopes(scope).
		Order("created_at DESC").
		Order("id").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&recs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	return toDomainList(recs), total, nil
}

// Stats counts orders per status plus shipped and damaged totals.
func (r *GormOrderRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	db := r.db.WithContext(ctx)

	if err := db.Model(&orderRecord{}).Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}

	stats := &domain.Stats{ByStatus: make(map[domain.OrderStatus]int64, len(domain.Statuses))}
	for _, s := range domain.Statuses {
		stats.ByStatus[s] = 0
	}
	for _, row := range rows {
		stats.ByStatus[domain.OrderStatus(row.Status)] = row.Count
		stats.Total += row.Count
	}

	if err := db.Model(&orderRecord{}).Where("is_shipped = ?", true).Count(&stats.Shipped).Error; err != nil {
		return nil, fmt.Errorf("failed to count shipped orders: %w", err)
	}
	if err := db.Model(&orderRecord{}).Where("is_damaged = ?", true).Count(&stats.Damaged).Error; err != nil {
		return nil, fmt.Errorf("failed to count damaged orders: %w", err)
	}

	return stats, nil
}

// OrderIDTaken implements ports.OrderRepository.
func (r *GormOrderRepository) OrderIDTaken(ctx context.Context, orderID, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).Model(&orderRecord{}).Where("order_id = ?", orderID)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, fmt.Errorf("failed to check order id %s: %w", orderID, err)
	}
	return n > 0, nil
}

// Create inserts the order, its history and its details.
func (r *GormOrderRepository) Create(ctx context.Context, order *domain.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(toOrderRecord(order)).Error; err != nil {
			return fmt.Errorf("failed to create order %s: %w", order.OrderID, err)
		}

		if len(order.StatusHistory) > 0 {
			history := make([]*statusHistoryRecord, 0, len(order.StatusHistory))
			for i := range order.StatusHistory {
				history = append(history, toHistoryRecord(order.ID, int64(i+1), &order.StatusHistory[i]))
			}
			if err := tx.Create(&history).Error; err != nil {
				return fmt.Errorf("failed to create history for order %s: %w", order.OrderID, err)
			}
		}

		if order.OrderDetails != nil {
			if err := tx.Create(toDetailsRecord(order.OrderDetails)).Error; err != nil {
				return fmt.Errorf("failed to create details for order %s: %w", order.OrderID, err)
			}
		}
		return nil
	})
}

var orderColumns = []string{
	"order_id", "package_id", "phone_number", "status", "size_category",
	"is_shipped", "is_damaged", "damage_description", "note", "created_at", "updated_at",
}

// Save writes every column of the order itself, zero values included.
func (r *GormOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	order.UpdatedAt = time.Now().UTC()
	rec := toOrderRecord(order)

	if err := r.db.WithContext(ctx).Model(rec).Select(orderColumns).Updates(rec).Error; err != nil {
		return fmt.Errorf("failed to save order %s: %w", order.ID, err)
	}
	return nil
}

// AppendHistory inserts one history row.
func (r *GormOrderRepository) AppendHistory(ctx context.Context, orderID string, entry *domain.StatusHistory) error {
	db := r.db.WithContext(ctx)

	var last int64
	err := db.Model(&statusHistoryRecord{}).
		Where("order_ref = ?", orderID).
		Select("COALESCE(MAX(seq), 0)").
		Scan(&last).Error
	if err != nil {
		return fmt.Errorf("failed to read history sequence for order %s: %w", orderID, err)
	}

	if err := db.Create(toHistoryRecord(orderID, last+1, entry)).Error; err != nil {
		return fmt.Errorf("failed to append history to order %s: %w", orderID, err)
	}
	return nil
}

var detailsColumns = []string{
	"total_quantity", "shipped_quantity", "large_item_quantity", "small_item_quantity",
	"price_rmb", "price_tonggur", "delivery_available", "comments",
}

// SaveDetails inserts the details row, or overwrites the one the order already has.
func (r *GormOrderRepository) SaveDetails(ctx context.Context, details *domain.OrderDetails) error {
	db := r.db.WithContext(ctx)
	rec := toDetailsRecord(details)

	var n int64
	if err := db.Model(&orderDetailsRecord{}).Where("order_ref = ?", details.OrderID).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to look up details for order %s: %w", details.OrderID, err)
	}

	var err error
	if n == 0 {
		err = db.Create(rec).Error
	} else {
		err = db.Model(&orderDetailsRecord{}).
			Where("order_ref = ?", details.OrderID).
			Select(detailsColumns).
			Updates(rec).Error
	}
	if err != nil {
		return fmt.Errorf("failed to save details for order %s: %w", details.OrderID, err)
	}
	return nil
}

// DeleteDetails removes the details row of an order, if any.
func (r *GormOrderRepository) DeleteDetails(ctx context.Context, orderID string) error {
	if err := r.db.WithContext(ctx).Where("order_ref = ?", orderID).Delete(&orderDetailsRecord{}).Error; err != nil {
		return fmt.Errorf("failed to delete details for order %s: %w", orderID, err)
	}
	return nil
}

// Delete removes the order and everything it owns. The explicit child deletes
// keep the cascade independent of whether the driver enforces foreign keys.
func (r *GormOrderRepository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_ref = ?", id).Delete(&statusHistoryRecord{}).Error; err != nil {
			return fmt.Errorf("failed to delete history for order %s: %w", id, err)
		}
		if err := tx.Where("order_ref = ?", id).Delete(&orderDetailsRecord{}).Error; err != nil {
			return fmt.Errorf("failed to delete details for order %s: %w", id, err)
		}
		res := tx.Where("id = ?", id).Delete(&orderRecord{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete order %s: %w", id, res.Error)
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

func toDomainList(recs []orderRecord) []domain.Order {
	out := make([]domain.Order, 0, len(recs))
	for i := range recs {
		out = append(out, *recs[i].toDomain())
	}
	return out
}
