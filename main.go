package main

import (
	"log"
	"os"

	api "todolist-backend/cmd/api"
	"todolist-backend/internal/reminder"
	"todolist-backend/internal/task/repository"
	"todolist-backend/internal/task/scheduler"
	"todolist-backend/internal/task/usecase"
	"todolist-backend/pkg/config"
	"todolist-backend/pkg/console"
	"todolist-backend/pkg/fcm"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Console sink: every task-list and reminder notification is one line here
	out := console.NewWriterSink(os.Stdout)

	// Initialize repository and usecase (dependency injection)
	taskRepo := repository.NewMemoryTaskRepository(nil)
	taskUsecase := usecase.NewTaskUsecase(taskRepo, out)

	// Pick the reminder channel from config; the manager binds to exactly one
	var channel reminder.Channel
	switch cfg.ReminderChannel {
	case "sms":
		channel = reminder.NewSMSChannel(out)
	case "push":
		fcmClient, err := fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] Failed to initialize FCM client, falling back to email reminders: %v", err)
			channel = reminder.NewEmailChannel(out)
		} else {
			channel = reminder.NewPushChannel(fcmClient, cfg.PushDeviceTokens)
		}
	default:
		channel = reminder.NewEmailChannel(out)
	}
	reminderMgr := reminder.NewManager(channel)
	log.Printf("Reminder manager bound to %s channel", reminderMgr.Medium())

	// Start the reminder scheduler only when explicitly enabled
	if cfg.SchedulerEnabled {
		taskScheduler := scheduler.NewTaskReminderScheduler(taskRepo, reminderMgr, cfg.ReminderInterval)
		taskScheduler.Start()
		defer taskScheduler.Stop()
	} else {
		log.Println("[TaskScheduler] Disabled (set SCHEDULER_ENABLED=true to enable)")
	}

	// Initialize HTTP handler
	handler := api.NewHandler(taskUsecase, reminderMgr, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
