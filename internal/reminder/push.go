package reminder

import (
	"context"
	"fmt"

	"todolist-backend/internal/task/domain"
	"todolist-backend/pkg/fcm"
)

// PushChannel delivers reminders as FCM push notifications to a fixed set
// of device tokens. Unlike the console channels, delivery can fail.
type PushChannel struct {
	client *fcm.Client
	tokens []string
}

// NewPushChannel creates a push reminder channel sending through client to
// the given device tokens.
func NewPushChannel(client *fcm.Client, tokens []string) *PushChannel {
	return &PushChannel{client: client, tokens: tokens}
}

func (c *PushChannel) Medium() string {
	return "Push"
}

func (c *PushChannel) Deliver(ctx context.Context, task *domain.Task, message string) error {
	_, err := c.client.SendToDevices(ctx, c.tokens, fcm.NotificationData{
		Title: fmt.Sprintf("Reminder: %s", task.Title),
		Body:  message,
		Data: map[string]string{
			"type":     "task_reminder",
			"task_id":  task.ID,
			"priority": string(task.Priority),
		},
	})
	if err != nil {
		return fmt.Errorf("push reminder for task '%s': %w", task.Title, err)
	}
	return nil
}
