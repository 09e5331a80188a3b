package repository

import (
	"time"

	"todolist-backend/internal/task/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Append adds a task to the end of the stored sequence
	Append(task *domain.Task) error

	// All returns every stored task in insertion order
	All() ([]*domain.Task, error)

	// FindByTitle returns the first task whose title exactly equals title,
	// or nil when no task matches. Absence is not an error.
	FindByTitle(title string) (*domain.Task, error)

	// SetCompletedByTitle sets the completion flag of the first task whose
	// title exactly equals title and returns the updated task, or nil when
	// no task matches. The mutation happens under the repository lock.
	SetCompletedByTitle(title string, completed bool) (*domain.Task, error)

	// FindPendingReminders finds tasks that need a reminder delivered:
	// remind_at <= now AND reminder_sent = false AND not completed
	FindPendingReminders(now time.Time) ([]*domain.Task, error)

	// MarkReminderSent marks a task's reminder as sent
	MarkReminderSent(id string) error
}
