package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"cargo-tracker/internal/core/auth"
	"cargo-tracker/internal/features/orders/domain"

	"github.com/shopspring/decimal"
)

// seeder is the part of the order service the seeder drives.
type seeder interface {
	CreateMany(ctx context.Context, p *auth.Principal, in []domain.CreateOrderInput) ([]domain.Order, error)
	Transition(ctx context.Context, p *auth.Principal, id string, in domain.TransitionInput) (*domain.Order, error)
}

type seedConfig struct {
	Orders    int
	BatchSize int
	// Seed fixes the generator for reproducible data. Zero uses the clock.
	Seed int64
}

var seedPrincipal = &auth.Principal{ID: "seed", Role: auth.RoleAdmin}

// journey is the usual path of a parcel from the warehouse to the door.
var journey = []domain.OrderStatus{
	domain.OrderStatusInTransit,
	domain.OrderStatusInUB,
	domain.OrderStatusOutForDelivery,
	domain.OrderStatusDelivered,
}

var sizes = []domain.SizeCategory{domain.SizeLarge, domain.SizeMedium, domain.SizeSmall, domain.SizeUndefined}

// seed creates cfg.Orders demo orders and walks each a random distance along the journey,
// so the history tables get realistic multi-entry timelines.
func seed(ctx context.Context, svc seeder, cfg seedConfig) (int, error) {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(cfg.Seed))
	now := time.Now().UTC()
	run := now.Format("0102150405")

	seeded := 0
	for seeded < cfg.Orders {
		n := min(cfg.BatchSize, cfg.Orders-seeded)

		batch := make([]domain.CreateOrderInput, 0, n)
		for i := 0; i < n; i++ {
			batch = append(batch, buildDemoOrder(rnd, run, seeded+i, now))
		}

		created, err := svc.CreateMany(ctx, seedPrincipal, batch)
		if err != nil {
			return seeded, fmt.Errorf("failed to create batch at %d: %w", seeded, err)
		}

		for _, o := range created {
			steps := rnd.Intn(len(journey) + 1)
			for _, status := range journey[:steps] {
				if _, err := svc.Transition(ctx, seedPrincipal, o.ID, domain.TransitionInput{Status: status}); err != nil {
					return seeded, fmt.Errorf("failed to move %s to %s: %w", o.OrderID, status, err)
				}
			}
		}
		seeded += len(created)
	}
	return seeded, nil
}

func buildDemoOrder(rnd *rand.Rand, run string, idx int, now time.Time) domain.CreateOrderInput {
	createdAt := now.Add(-time.Duration(rnd.Intn(60*24)) * time.Hour)
	in := domain.CreateOrderInput{
		OrderID:      fmt.Sprintf("DEMO-%s-%05d", run, idx),
		PackageID:    fmt.Sprintf("YT%012d", rnd.Int63n(1_000_000_000_000)),
		PhoneNumber:  randomPhone(rnd),
		Status:       domain.OrderStatusInWarehouse,
		SizeCategory: sizes[rnd.Intn(len(sizes))],
		CreatedAt:    &createdAt,
	}

	if rnd.Intn(10) == 0 {
		in.IsDamaged = true
		in.DamageDescription = "Box crushed on arrival"
	}

	if rnd.Intn(3) == 0 {
		total := 1 + rnd.Intn(20)
		large := rnd.Intn(total + 1)
		in.IsShipped = true
		in.Details = &domain.DetailsInput{
			TotalQuantity:     total,
			ShippedQuantity:   total - rnd.Intn(total/2+1),
			LargeItemQuantity: large,
			SmallItemQuantity: total - large,
			PriceRMB:          decimal.NewFromInt(int64(10 + rnd.Intn(990))),
			PriceTonggur:      decimal.NewFromInt(int64(5_000 + rnd.Intn(495_000))),
			DeliveryAvailable: rnd.Intn(2) == 0,
		}
	}
	return in
}

// randomPhone returns an 8-digit Mongolian mobile number.
func randomPhone(rnd *rand.Rand) string {
	prefixes := []string{"88", "89", "99", "95", "94", "80"}
	return fmt.Sprintf("%s%06d", prefixes[rnd.Intn(len(prefixes))], rnd.Intn(1_000_000))
}
