package domain

import (
	"time"

	noticedomain "cargo-tracker/internal/features/notices/domain"
)

// StatusChanged is published after a committed transition that appended history.
type StatusChanged struct {
	ID          string      `json:"id"`
	OrderID     string      `json:"orderId"`
	PackageID   string      `json:"packageId"`
	PhoneNumber string      `json:"phoneNumber,omitempty"`
	From        OrderStatus `json:"from,omitempty"`
	To          OrderStatus `json:"to"`
	At          time.Time   `json:"at"`
	EmployeeID  string      `json:"employeeId,omitempty"`
}

// TrackingView is the public, unauthenticated projection of an order.
type TrackingView struct {
	OrderID     string          `json:"orderId"`
	PackageID   string          `json:"packageId"`
	PhoneNumber string          `json:"phoneNumber,omitempty"`
	Status      OrderStatus     `json:"status"`
	IsShipped   bool            `json:"isShipped"`
	CreatedAt   time.Time       `json:"createdAt"`
	History     []StatusHistory `json:"history"`
	// Notices are the delivery announcements relevant to Status.
	Notices []noticedomain.Notice `json:"notices"`
}

// NewTrackingView projects o without prices, notes or staff ids.
func NewTrackingView(o *Order) *TrackingView {
	history := make([]StatusHistory, len(o.StatusHistory))
	for i, h := range o.StatusHistory {
		history[i] = StatusHistory{ID: h.ID, Status: h.Status, Timestamp: h.Timestamp}
	}
	return &TrackingView{
		OrderID:     o.OrderID,
		PackageID:   o.PackageID,
		PhoneNumber: MaskPhone(o.PhoneNumber),
		Status:      o.Status,
		IsShipped:   o.IsShipped,
		CreatedAt:   o.CreatedAt,
		History:     history,
		Notices:     []noticedomain.Notice{},
	}
}

// MaskPhone keeps the first and last two digits: "99112233" -> "99****33".
func MaskPhone(phone string) string {
	r := []rune(phone)
	if len(r) <= 4 {
		return phone
	}
	for i := 2; i < len(r)-2; i++ {
		r[i] = '*'
	}
	return string(r)
}
