package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"todolist-backend/internal/reminder"
	"todolist-backend/internal/task/repository"
)

// TaskReminderScheduler delivers due task reminders through the bound
// reminder manager.
type TaskReminderScheduler struct {
	taskRepo    repository.TaskRepository
	reminderMgr *reminder.Manager
	interval    time.Duration
	stopChan    chan struct{}
}

// NewTaskReminderScheduler creates a new scheduler
func NewTaskReminderScheduler(
	taskRepo repository.TaskRepository,
	reminderMgr *reminder.Manager,
	interval time.Duration,
) *TaskReminderScheduler {
	if interval <= 0 {
		interval = 1 * time.Minute
	}
	return &TaskReminderScheduler{
		taskRepo:    taskRepo,
		reminderMgr: reminderMgr,
		interval:    interval,
		stopChan:    make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (s *TaskReminderScheduler) Start() {
	log.Printf("[TaskScheduler] Starting task reminder scheduler (interval: %s, medium: %s)", s.interval, s.reminderMgr.Medium())

	go func() {
		// Run immediately on start
		s.checkAndSendReminders()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.checkAndSendReminders()
			case <-s.stopChan:
				log.Println("[TaskScheduler] Scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *TaskReminderScheduler) Stop() {
	close(s.stopChan)
}

// checkAndSendReminders finds tasks with due reminders and delivers them
func (s *TaskReminderScheduler) checkAndSendReminders() {
	now := time.Now()

	tasks, err := s.taskRepo.FindPendingReminders(now)
	if err != nil {
		log.Printf("[TaskScheduler] Error finding pending reminders: %v", err)
		return
	}

	if len(tasks) == 0 {
		return
	}

	log.Printf("[TaskScheduler] Found %d tasks with pending reminders", len(tasks))

	for _, task := range tasks {
		message := fmt.Sprintf("'%s' is due", task.Title)
		if task.Recurrence != "" {
			message = fmt.Sprintf("%s (%s)", message, task.Recurrence)
		}

		if err := s.reminderMgr.SendReminder(context.Background(), task, message); err != nil {
			log.Printf("[TaskScheduler] Error sending reminder for task '%s': %v", task.Title, err)
		}

		// Mark sent regardless of delivery outcome to avoid spamming
		if err := s.taskRepo.MarkReminderSent(task.ID); err != nil {
			log.Printf("[TaskScheduler] Error marking reminder as sent for task %s: %v", task.ID, err)
		}
	}
}
