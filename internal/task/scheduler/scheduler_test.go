package scheduler

import (
	"context"
	"testing"
	"time"

	"todolist-backend/internal/reminder"
	"todolist-backend/internal/task/domain"
	"todolist-backend/internal/task/repository"
)

type recordingChannel struct {
	delivered []string
}

func (c *recordingChannel) Medium() string { return "Test" }

func (c *recordingChannel) Deliver(_ context.Context, task *domain.Task, message string) error {
	c.delivered = append(c.delivered, task.Title+": "+message)
	return nil
}

func TestCheckAndSendReminders(t *testing.T) {
	repo := repository.NewMemoryTaskRepository(nil)

	past := time.Now().Add(-time.Minute)
	due := domain.NewRecurringTask("Workout", "Daily")
	due.RemindAt = &past

	future := time.Now().Add(time.Hour)
	later := domain.NewTask("later")
	later.RemindAt = &future

	repo.Append(due)
	repo.Append(later)

	ch := &recordingChannel{}
	s := NewTaskReminderScheduler(repo, reminder.NewManager(ch), time.Minute)

	s.checkAndSendReminders()

	if len(ch.delivered) != 1 {
		t.Fatalf("expected 1 delivery, got %d: %v", len(ch.delivered), ch.delivered)
	}
	if ch.delivered[0] != "Workout: 'Workout' is due (Daily)" {
		t.Errorf("unexpected delivery: %q", ch.delivered[0])
	}

	// A second pass must not redeliver
	s.checkAndSendReminders()
	if len(ch.delivered) != 1 {
		t.Errorf("expected reminder delivered exactly once, got %d", len(ch.delivered))
	}
}

func TestCheckAndSendRemindersSkipsCompleted(t *testing.T) {
	repo := repository.NewMemoryTaskRepository(nil)

	past := time.Now().Add(-time.Minute)
	done := domain.NewTask("done")
	done.RemindAt = &past
	done.Completed = true
	repo.Append(done)

	ch := &recordingChannel{}
	s := NewTaskReminderScheduler(repo, reminder.NewManager(ch), time.Minute)

	s.checkAndSendReminders()

	if len(ch.delivered) != 0 {
		t.Errorf("completed task should not get a reminder, got %v", ch.delivered)
	}
}

func TestStartStop(t *testing.T) {
	repo := repository.NewMemoryTaskRepository(nil)
	ch := &recordingChannel{}
	s := NewTaskReminderScheduler(repo, reminder.NewManager(ch), 10*time.Millisecond)

	s.Start()
	time.Sleep(30 * time.Millisecond)
	s.Stop()
}
