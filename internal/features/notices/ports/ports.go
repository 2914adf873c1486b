package ports

import (
	"context"

	"cargo-tracker/internal/features/notices/domain"
)

// NoticeService defines the primary port for notice operations.
type NoticeService interface {
	Post(ctx context.Context, title, message string, severity domain.Severity, statuses []string, duration int) (*domain.Notice, error)
	List(ctx context.Context) ([]domain.Notice, error)
	ForStatus(ctx context.Context, status string) ([]domain.Notice, error)
	Remove(ctx context.Context, id string) error
}

// NoticeRepository defines the secondary port for notice storage.
type NoticeRepository interface {
	Save(ctx context.Context, notice *domain.Notice) error
	List(ctx context.Context) ([]domain.Notice, error)
	// Delete reports whether a notice with id existed.
	Delete(ctx context.Context, id string) (bool, error)
}
