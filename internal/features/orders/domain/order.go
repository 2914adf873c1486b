package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents where a shipment currently is.
type OrderStatus string

const (
	// OrderStatusPending is a legacy state for orders registered before reaching the warehouse.
	OrderStatusPending OrderStatus = "PENDING"
	// OrderStatusInWarehouse indicates the goods arrived at the origin warehouse.
	OrderStatusInWarehouse OrderStatus = "IN_WAREHOUSE"
	// OrderStatusInTransit indicates the goods left the origin warehouse.
	OrderStatusInTransit OrderStatus = "IN_TRANSIT"
	// OrderStatusInUB indicates the goods reached the Ulaanbaatar warehouse.
	OrderStatusInUB OrderStatus = "IN_UB"
	// OrderStatusOutForDelivery indicates a courier is delivering the goods.
	OrderStatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	// OrderStatusDelivered indicates the customer received the goods.
	OrderStatusDelivered OrderStatus = "DELIVERED"
	// OrderStatusCancelled indicates the order was cancelled.
	OrderStatusCancelled OrderStatus = "CANCELLED"
	// OrderStatusCustomsHold indicates the goods are held at customs.
	OrderStatusCustomsHold OrderStatus = "CUSTOMS_HOLD"
)

// Statuses lists every known status in their conceptual order.
var Statuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusInWarehouse,
	OrderStatusInTransit,
	OrderStatusInUB,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCancelled,
	OrderStatusCustomsHold,
}

// IsValid reports whether s is a known status.
func (s OrderStatus) IsValid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus normalizes user input ("in_transit", " IN_UB ") to a known status.
func ParseStatus(raw string) (OrderStatus, bool) {
	s := OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
	return s, s.IsValid()
}

// SizeCategory is the coarse size class used for pricing and loading.
type SizeCategory string

const (
	SizeLarge     SizeCategory = "LARGE"
	SizeMedium    SizeCategory = "MEDIUM"
	SizeSmall     SizeCategory = "SMALL"
	SizeUndefined SizeCategory = "UNDEFINED"
)

// IsValid reports whether c is a known size category.
func (c SizeCategory) IsValid() bool {
	switch c {
	case SizeLarge, SizeMedium, SizeSmall, SizeUndefined:
		return true
	}
	return false
}

// Order is a customer shipment tracked through its lifecycle.
type Order struct {
	// ID is the system generated identifier. It never changes.
	ID string `json:"id"`
	// OrderID is the human assigned order number.
	OrderID string `json:"orderId"`
	// PackageID is the carrier tracking number.
	PackageID string `json:"packageId"`
	// PhoneNumber links the order to a customer account.
	PhoneNumber string `json:"phoneNumber,omitempty"`
	// Status mirrors the latest StatusHistory entry.
	Status OrderStatus `json:"status"`
	// SizeCategory is the coarse size class.
	SizeCategory SizeCategory `json:"sizeCategory"`
	IsShipped    bool         `json:"isShipped"`
	IsDamaged    bool         `json:"isDamaged"`
	// DamageDescription is only meaningful when IsDamaged is set.
	DamageDescription string `json:"damageDescription,omitempty"`
	Note              string `json:"note,omitempty"`
	// CreatedAt is the business order date, editable by staff.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// StatusHistory is sorted ascending by Timestamp.
	StatusHistory []StatusHistory `json:"statusHistory"`
	OrderDetails  *OrderDetails   `json:"orderDetails,omitempty"`
}

// StatusHistory is one append-only status change record.
type StatusHistory struct {
	ID         string      `json:"id"`
	Status     OrderStatus `json:"status"`
	Timestamp  time.Time   `json:"timestamp"`
	EmployeeID string      `json:"employeeId,omitempty"`
}

// OrderDetails holds quantities and pricing once an order ships.
type OrderDetails struct {
	ID                string          `json:"id"`
	OrderID           string          `json:"orderId"`
	TotalQuantity     int             `json:"totalQuantity"`
	ShippedQuantity   int             `json:"shippedQuantity"`
	LargeItemQuantity int             `json:"largeItemQuantity"`
	SmallItemQuantity int             `json:"smallItemQuantity"`
	PriceRMB          decimal.Decimal `json:"priceRMB"`
	PriceTonggur      decimal.Decimal `json:"priceTonggur"`
	DeliveryAvailable bool            `json:"deliveryAvailable"`
	Comments          string          `json:"comments,omitempty"`
}

// SortHistory orders the history by timestamp. Ties keep their stored order.
func (o *Order) SortHistory() {
	sort.SliceStable(o.StatusHistory, func(i, j int) bool {
		return o.StatusHistory[i].Timestamp.Before(o.StatusHistory[j].Timestamp)
	})
}

// latest returns the most recent history entry. Equal timestamps go to the later position.
func (o *Order) latest() (StatusHistory, bool) {
	if len(o.StatusHistory) == 0 {
		return StatusHistory{}, false
	}
	latest := o.StatusHistory[0]
	for _, h := range o.StatusHistory[1:] {
		if !h.Timestamp.Before(latest.Timestamp) {
			latest = h
		}
	}
	return latest, true
}

// LatestStatus returns the status of the most recent history entry.
// ok is false when the history is empty.
func (o *Order) LatestStatus() (status OrderStatus, ok bool) {
	h, ok := o.latest()
	return h.Status, ok
}

// NextHistoryTime is the timestamp for a new history entry: now, or one millisecond
// past the latest entry when that entry is not older than now.
func (o *Order) NextHistoryTime(now time.Time) time.Time {
	if h, ok := o.latest(); ok && !now.After(h.Timestamp) {
		return h.Timestamp.Add(time.Millisecond)
	}
	return now
}

// StatusChanged reports whether moving to target appends a history entry.
func (o *Order) StatusChanged(target OrderStatus) bool {
	latest, ok := o.LatestStatus()
	return !ok || latest != target
}
