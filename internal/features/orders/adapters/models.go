package adapter

import (
	"time"

	"cargo-tracker/internal/features/orders/domain"

	"github.com/shopspring/decimal"
)

// orderRecord is the orders table.
type orderRecord struct {
	ID                string `gorm:"type:varchar(36);primaryKey"`
	OrderID           string `gorm:"size:64;not null;index"`
	PackageID         string `gorm:"size:64;not null;index"`
	PhoneNumber       string `gorm:"size:32;index"`
	Status            string `gorm:"size:32;not null;index"`
	SizeCategory      string `gorm:"size:16;not null;default:UNDEFINED"`
	IsShipped         bool   `gorm:"not null;default:false"`
	IsDamaged         bool   `gorm:"not null;default:false"`
	DamageDescription string `gorm:"size:512"`
	Note              string `gorm:"size:1024"`
	// CreatedAt is the business order date; gorm only fills it when zero.
	CreatedAt     time.Time             `gorm:"not null;index"`
	UpdatedAt     time.Time             `gorm:"not null"`
	StatusHistory []statusHistoryRecord `gorm:"foreignKey:OrderRef;constraint:OnDelete:CASCADE"`
	OrderDetails  *orderDetailsRecord   `gorm:"foreignKey:OrderRef;constraint:OnDelete:CASCADE"`
}

func (orderRecord) TableName() string { return "orders" }

// statusHistoryRecord is one append-only row of order_status_history.
type statusHistoryRecord struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	OrderRef  string    `gorm:"type:varchar(36);not null;index:idx_history_order_time,priority:1"`
	Status    string    `gorm:"size:32;not null"`
	ChangedAt time.Time `gorm:"not null;index:idx_history_order_time,priority:2"`
	// Seq numbers an order's entries in write order and breaks ChangedAt ties.
	Seq        int64  `gorm:"not null;default:0;index:idx_history_order_time,priority:3"`
	EmployeeID string `gorm:"size:64"`
}

func (statusHistoryRecord) TableName() string { return "order_status_history" }

// orderDetailsRecord is the 0..1 shipping details row.
type orderDetailsRecord struct {
	ID                string          `gorm:"type:varchar(36);primaryKey"`
	OrderRef          string          `gorm:"type:varchar(36);not null;uniqueIndex"`
	TotalQuantity     int             `gorm:"not null;default:0"`
	ShippedQuantity   int             `gorm:"not null;default:0"`
	LargeItemQuantity int             `gorm:"not null;default:0"`
	SmallItemQuantity int             `gorm:"not null;default:0"`
	PriceRMB          decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	PriceTonggur      decimal.Decimal `gorm:"type:decimal(16,2);not null;default:0"`
	DeliveryAvailable bool            `gorm:"not null;default:false"`
	Comments          string          `gorm:"size:1024"`
}

func (orderDetailsRecord) TableName() string { return "order_details" }

// Models lists every table owned by the orders feature, in migration order.
func Models() []interface{} {
	return []interface{}{&orderRecord{}, &statusHistoryRecord{}, &orderDetailsRecord{}}
}

func toOrderRecord(o *domain.Order) *orderRecord {
	return &orderRecord{
		ID:                o.ID,
		OrderID:           o.OrderID,
		PackageID:         o.PackageID,
		PhoneNumber:       o.PhoneNumber,
		Status:            string(o.Status),
		SizeCategory:      string(o.SizeCategory),
		IsShipped:         o.IsShipped,
		IsDamaged:         o.IsDamaged,
		DamageDescription: o.DamageDescription,
		Note:              o.Note,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func toHistoryRecord(orderRef string, seq int64, h *domain.StatusHistory) *statusHistoryRecord {
	return &statusHistoryRecord{
		ID:         h.ID,
		OrderRef:   orderRef,
		Status:     string(h.Status),
		ChangedAt:  h.Timestamp,
		Seq:        seq,
		EmployeeID: h.EmployeeID,
	}
}

func toDetailsRecord(d *domain.OrderDetails) *orderDetailsRecord {
	return &orderDetailsRecord{
		ID:                d.ID,
		OrderRef:          d.OrderID,
		TotalQuantity:     d.TotalQuantity,
		ShippedQuantity:   d.ShippedQuantity,
		LargeItemQuantity: d.LargeItemQuantity,
		SmallItemQuantity: d.SmallItemQuantity,
		PriceRMB:          d.PriceRMB,
		PriceTonggur:      d.PriceTonggur,
		DeliveryAvailable: d.DeliveryAvailable,
		Comments:          d.Comments,
	}
}

func (r *orderRecord) toDomain() *domain.Order {
	o := &domain.Order{
		ID:                r.ID,
		OrderID:           r.OrderID,
		PackageID:         r.PackageID,
		PhoneNumber:       r.PhoneNumber,
		Status:            domain.OrderStatus(r.Status),
		SizeCategory:      domain.SizeCategory(r.SizeCategory),
		IsShipped:         r.IsShipped,
		IsDamaged:         r.IsDamaged,
		DamageDescription: r.DamageDescription,
		Note:              r.Note,
		CreatedAt:         r.CreatedAt.UTC(),
		UpdatedAt:         r.UpdatedAt.UTC(),
		StatusHistory:     make([]domain.StatusHistory, 0, len(r.StatusHistory)),
	}

	for _, h := range r.StatusHistory {
		o.StatusHistory = append(o.StatusHistory, domain.StatusHistory{
			ID:         h.ID,
			Status:     domain.OrderStatus(h.Status),
			Timestamp:  h.ChangedAt.UTC(),
			EmployeeID: h.EmployeeID,
		})
	}
	o.SortHistory()

	if d := r.OrderDetails; d != nil {
		o.OrderDetails = &domain.OrderDetails{
			ID:                d.ID,
			OrderID:           d.OrderRef,
			TotalQuantity:     d.TotalQuantity,
			ShippedQuantity:   d.ShippedQuantity,
			LargeItemQuantity: d.LargeItemQuantity,
			SmallItemQuantity: d.SmallItemQuantity,
			PriceRMB:          d.PriceRMB,
			PriceTonggur:      d.PriceTonggur,
			DeliveryAvailable: d.DeliveryAvailable,
			Comments:          d.Comments,
		}
	}

	return o
}
