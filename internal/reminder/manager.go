package reminder

import (
	"context"

	"todolist-backend/internal/task/domain"
)

// Manager binds to exactly one Channel for its lifetime and forwards
// reminder requests to it. To deliver through a different medium,
// construct a new Manager; there is no rebind operation.
type Manager struct {
	channel Channel
}

// NewManager creates a Manager bound to the given channel.
func NewManager(channel Channel) *Manager {
	return &Manager{channel: channel}
}

// SendReminder delegates verbatim to the bound channel.
func (m *Manager) SendReminder(ctx context.Context, task *domain.Task, message string) error {
	return m.channel.Deliver(ctx, task, message)
}

// Medium reports the bound channel's medium name.
func (m *Manager) Medium() string {
	return m.channel.Medium()
}
