package domain

import orderdomain "cargo-tracker/internal/features/orders/domain"

// Result reports a committed import.
type Result struct {
	Imported int                 `json:"imported"`
	Orders   []orderdomain.Order `json:"orders"`
}
