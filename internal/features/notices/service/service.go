package service

import (
	"context"
	"fmt"

	"cargo-tracker/internal/features/notices/domain"
	"cargo-tracker/internal/features/notices/ports"
	orderdomain "cargo-tracker/internal/features/orders/domain"
)

// NoticeServiceImpl implements ports.NoticeService.
type NoticeServiceImpl struct {
	repo ports.NoticeRepository
}

// NewNoticeService creates a new NoticeServiceImpl.
func NewNoticeService(repo ports.NoticeRepository) *NoticeServiceImpl {
	return &NoticeServiceImpl{repo: repo}
}

// Post creates and saves a notice. Every status filter entry must name an order status.
func (s *NoticeServiceImpl) Post(ctx context.Context, title, message string, severity domain.Severity, statuses []string, duration int) (*domain.Notice, error) {
	for _, raw := range statuses {
		if _, ok := orderdomain.ParseStatus(raw); !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownStatus, raw)
		}
	}

	notice, err := domain.NewNotice(title, message, severity, statuses, duration)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, notice); err != nil {
		return nil, fmt.Errorf("service: failed to save notice: %w", err)
	}

	return notice, nil
}

// List returns every live notice.
func (s *NoticeServiceImpl) List(ctx context.Context) ([]domain.Notice, error) {
	notices, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list notices: %w", err)
	}
	return notices, nil
}

// ForStatus returns the notices to show next to an order in status.
func (s *NoticeServiceImpl) ForStatus(ctx context.Context, status string) ([]domain.Notice, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	matching := make([]domain.Notice, 0, len(all))
	for i := range all {
		if all[i].AppliesTo(status) {
			matching = append(matching, all[i])
		}
	}
	return matching, nil
}

// Remove deletes a notice.
func (s *NoticeServiceImpl) Remove(ctx context.Context, id string) error {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("service: failed to remove notice: %w", err)
	}
	if !existed {
		return domain.ErrNoticeNotFound
	}
	return nil
}
