package reminder

import (
	"context"

	"todolist-backend/internal/task/domain"
)

// Channel delivers a reminder message for a task via a named medium. Any
// task variant can be passed to any channel. New media are added by
// implementing this interface; no existing caller changes.
type Channel interface {
	// Medium returns the channel's medium name (e.g. "Email", "SMS")
	Medium() string

	// Deliver emits a notification carrying the task's title and the
	// message text via this channel's medium
	Deliver(ctx context.Context, task *domain.Task, message string) error
}
