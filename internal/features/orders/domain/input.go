package domain

import "time"

// CreateOrderInput creates a new order with its first history entry.
type CreateOrderInput struct {
	OrderID           string        `json:"orderId"`
	PackageID         string        `json:"packageId"`
	PhoneNumber       string        `json:"phoneNumber,omitempty"`
	Status            OrderStatus   `json:"status"`
	SizeCategory      SizeCategory  `json:"sizeCategory,omitempty"`
	IsShipped         bool          `json:"isShipped"`
	IsDamaged         bool          `json:"isDamaged"`
	DamageDescription string        `json:"damageDescription,omitempty"`
	Note              string        `json:"note,omitempty"`
	CreatedAt         *time.Time    `json:"createdAt,omitempty"`
	Details           *DetailsInput `json:"orderDetails,omitempty"`
	// BackfillHistory stamps the first history entry with CreatedAt instead of now.
	// Set by the bulk importer for legacy spreadsheets.
	BackfillHistory bool `json:"-"`
}

// UpdateOrderInput is a full-order edit. Nil fields are left unchanged.
type UpdateOrderInput struct {
	OrderID           *string       `json:"orderId,omitempty"`
	PackageID         *string       `json:"packageId,omitempty"`
	PhoneNumber       *string       `json:"phoneNumber,omitempty"`
	Status            *OrderStatus  `json:"status,omitempty"`
	SizeCategory      *SizeCategory `json:"sizeCategory,omitempty"`
	IsShipped         *bool         `json:"isShipped,omitempty"`
	IsDamaged         *bool         `json:"isDamaged,omitempty"`
	DamageDescription *string       `json:"damageDescription,omitempty"`
	Note              *string       `json:"note,omitempty"`
	CreatedAt         *time.Time    `json:"createdAt,omitempty"`
	Details           *DetailsInput `json:"orderDetails,omitempty"`
}

// Apply copies the set fields onto o. Status and details are handled by the service.
func (in UpdateOrderInput) Apply(o *Order) {
	if in.OrderID != nil {
		o.OrderID = *in.OrderID
	}
	if in.PackageID != nil {
		o.PackageID = *in.PackageID
	}
	if in.PhoneNumber != nil {
		o.PhoneNumber = *in.PhoneNumber
	}
	if in.SizeCategory != nil {
		o.SizeCategory = *in.SizeCategory
	}
	if in.IsShipped != nil {
		o.IsShipped = *in.IsShipped
	}
	if in.IsDamaged != nil {
		o.IsDamaged = *in.IsDamaged
	}
	if in.DamageDescription != nil {
		o.DamageDescription = *in.DamageDescription
	}
	if !o.IsDamaged {
		o.DamageDescription = ""
	}
	if in.Note != nil {
		o.Note = *in.Note
	}
	if in.CreatedAt != nil {
		o.CreatedAt = in.CreatedAt.UTC()
	}
}

// TransitionInput moves an order to a new status.
type TransitionInput struct {
	Status OrderStatus `json:"status"`
}

// ListFilter narrows the staff order listing.
type ListFilter struct {
	Status      OrderStatus
	PhoneNumber string
	Shipped     *bool
	// Query matches orderId or packageId by prefix.
	Query    string
	Page     int
	PageSize int
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// Normalize clamps paging to sane bounds.
func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
}

// Offset is the number of rows skipped for the current page.
func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// OrderPage is one page of the staff listing.
type OrderPage struct {
	Items    []Order `json:"items"`
	Total    int64   `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
}

// Stats summarizes orders for the staff dashboard.
type Stats struct {
	Total    int64                 `json:"total"`
	ByStatus map[OrderStatus]int64 `json:"byStatus"`
	Shipped  int64                 `json:"shipped"`
	Damaged  int64                 `json:"damaged"`
}
