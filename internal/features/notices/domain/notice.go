package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Severity controls how prominently a notice is shown.
type Severity string

const (
	SeverityInfo    Severity = "INFO"
	SeverityWarning Severity = "WARNING"
	SeverityDanger  Severity = "DANGER"
)

var (
	ErrInvalidSeverity = errors.New("invalid notice severity")
	ErrTitleRequired   = errors.New("notice title is required")
	ErrInvalidDuration = errors.New("notice duration must not be negative")
	ErrNoticeNotFound  = errors.New("notice not found")
	ErrUnknownStatus   = errors.New("unknown order status")
)

// Notice is a short delivery announcement shown to customers, e.g. a border
// closure delaying every IN_TRANSIT order.
type Notice struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	// Statuses limits the notice to orders in one of these statuses. Empty means all.
	Statuses []string `json:"statuses,omitempty"`
	// Duration in seconds. 0 means until removed.
	Duration  int        `json:"duration,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// NewNotice validates the fields and stamps identity and expiry.
func NewNotice(title, message string, severity Severity, statuses []string, duration int) (*Notice, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if severity != SeverityInfo && severity != SeverityWarning && severity != SeverityDanger {
		return nil, ErrInvalidSeverity
	}
	if duration < 0 {
		return nil, ErrInvalidDuration
	}

	now := time.Now().UTC()
	n := &Notice{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   strings.TrimSpace(message),
		Severity:  severity,
		Statuses:  normalizeStatuses(statuses),
		Duration:  duration,
		CreatedAt: now,
	}
	if duration > 0 {
		exp := now.Add(n.TTL())
		n.ExpiresAt = &exp
	}
	return n, nil
}

// TTL is the storage lifetime; 0 means no expiry.
func (n *Notice) TTL() time.Duration {
	return time.Duration(n.Duration) * time.Second
}

// AppliesTo reports whether the notice should be shown for an order in status.
func (n *Notice) AppliesTo(status string) bool {
	if len(n.Statuses) == 0 {
		return true
	}
	status = normalizeStatus(status)
	for _, s := range n.Statuses {
		if normalizeStatus(s) == status {
			return true
		}
	}
	return false
}

func normalizeStatus(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// normalizeStatuses upper-cases the filter and drops blanks and duplicates.
func normalizeStatuses(statuses []string) []string {
	if len(statuses) == 0 {
		return nil
	}
	out := make([]string, 0, len(statuses))
	seen := make(map[string]struct{}, len(statuses))
	for _, raw := range statuses {
		s := normalizeStatus(raw)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
