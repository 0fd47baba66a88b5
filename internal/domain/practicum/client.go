package practicum

import (
	"context"

	"homework_notification_bot/internal/domain/homework"
)

// Client defines an interface for querying the homework review API.
// This helps in decoupling the polling logic from the HTTP transport.
type Client interface {
	// HomeworkStatuses fetches all status changes since fromDate (Unix seconds).
	HomeworkStatuses(ctx context.Context, fromDate int64) (*homework.StatusesResponse, error)
}
