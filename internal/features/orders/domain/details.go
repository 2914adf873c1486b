package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrNegativeQuantity is returned when a details quantity is below zero.
	ErrNegativeQuantity = errors.New("quantities must not be negative")
	// ErrNegativePrice is returned when a details price is below zero.
	ErrNegativePrice = errors.New("prices must not be negative")
)

// DetailsInput is the payload that creates or edits OrderDetails.
type DetailsInput struct {
	TotalQuantity     int             `json:"totalQuantity"`
	ShippedQuantity   int             `json:"shippedQuantity"`
	LargeItemQuantity int             `json:"largeItemQuantity"`
	SmallItemQuantity int             `json:"smallItemQuantity"`
	PriceRMB          decimal.Decimal `json:"priceRMB"`
	PriceTonggur      decimal.Decimal `json:"priceTonggur"`
	DeliveryAvailable bool            `json:"deliveryAvailable"`
	Comments          string          `json:"comments,omitempty"`
}

// Validate checks the non-negativity constraints.
func (d DetailsInput) Validate() error {
	for _, q := range []int{d.TotalQuantity, d.ShippedQuantity, d.LargeItemQuantity, d.SmallItemQuantity} {
		if q < 0 {
			return ErrNegativeQuantity
		}
	}
	if d.PriceRMB.IsNegative() || d.PriceTonggur.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

// Apply copies the payload onto details, keeping its identity.
func (d DetailsInput) Apply(details *OrderDetails) {
	details.TotalQuantity = d.TotalQuantity
	details.ShippedQuantity = d.ShippedQuantity
	details.LargeItemQuantity = d.LargeItemQuantity
	details.SmallItemQuantity = d.SmallItemQuantity
	details.PriceRMB = d.PriceRMB
	details.PriceTonggur = d.PriceTonggur
	details.DeliveryAvailable = d.DeliveryAvailable
	details.Comments = d.Comments
}

// DetailsAction is what the lifecycle rules decide to do with OrderDetails.
type DetailsAction int

const (
	DetailsKeep DetailsAction = iota
	DetailsUpsert
	DetailsDelete
)

// PlanDetails applies the shipped/details lockstep rules:
// shipped with a payload upserts, not shipped with a record deletes,
// anything else leaves the record alone.
func PlanDetails(shipped bool, payload *DetailsInput, hasDetails bool) DetailsAction {
	switch {
	case shipped && payload != nil:
		return DetailsUpsert
	case !shipped && hasDetails:
		return DetailsDelete
	default:
		return DetailsKeep
	}
}
