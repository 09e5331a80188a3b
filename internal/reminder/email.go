package reminder

import (
	"context"
	"fmt"

	"todolist-backend/internal/task/domain"
	"todolist-backend/pkg/console"
)

// EmailChannel announces reminders on the console sink as email deliveries.
type EmailChannel struct {
	out console.Sink
}

// NewEmailChannel creates an email reminder channel writing to out.
func NewEmailChannel(out console.Sink) *EmailChannel {
	return &EmailChannel{out: out}
}

func (c *EmailChannel) Medium() string {
	return "Email"
}

func (c *EmailChannel) Deliver(ctx context.Context, task *domain.Task, message string) error {
	c.out.Println(fmt.Sprintf("Email reminder for task '%s': %s", task.Title, message))
	return nil
}
