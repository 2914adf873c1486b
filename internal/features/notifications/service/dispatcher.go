package service

import (
	"context"

	"cargo-tracker/internal/features/orders/domain"
	"cargo-tracker/internal/features/orders/ports"

	"go.uber.org/multierr"
)

// Dispatcher fans a status change out to every notifier. One failing
// notifier does not stop the others.
type Dispatcher struct {
	notifiers []ports.Notifier
}

// NewDispatcher creates a Dispatcher. Nil notifiers are dropped.
func NewDispatcher(notifiers ...ports.Notifier) *Dispatcher {
	d := &Dispatcher{}
	for _, n := range notifiers {
		if n != nil {
			d.notifiers = append(d.notifiers, n)
		}
	}
	return d
}

// Len is the number of wired notifiers.
func (d *Dispatcher) Len() int { return len(d.notifiers) }

// StatusChanged implements ports.Notifier.
func (d *Dispatcher) StatusChanged(ctx context.Context, event domain.StatusChanged) error {
	var err error
	for _, n := range d.notifiers {
		err = multierr.Append(err, n.StatusChanged(ctx, event))
	}
	return err
}

// Nop discards every event.
type Nop struct{}

// StatusChanged implements ports.Notifier.
func (Nop) StatusChanged(context.Context, domain.StatusChanged) error { return nil }
