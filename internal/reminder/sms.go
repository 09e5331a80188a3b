package reminder

import (
	"context"
	"fmt"

	"todolist-backend/internal/task/domain"
	"todolist-backend/pkg/console"
)

// SMSChannel announces reminders on the console sink as SMS deliveries.
// Behaviorally identical to EmailChannel apart from the medium label.
type SMSChannel struct {
	out console.Sink
}

// NewSMSChannel creates an SMS reminder channel writing to out.
func NewSMSChannel(out console.Sink) *SMSChannel {
	return &SMSChannel{out: out}
}

func (c *SMSChannel) Medium() string {
	return "SMS"
}

func (c *SMSChannel) Deliver(ctx context.Context, task *domain.Task, message string) error {
	c.out.Println(fmt.Sprintf("SMS reminder for task '%s': %s", task.Title, message))
	return nil
}
