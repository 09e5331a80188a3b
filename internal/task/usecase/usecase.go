package usecase

import (
	"todolist-backend/internal/task/domain"
)

// TaskUsecase defines the interface for the task list manager
type TaskUsecase interface {
	// AddTask appends a task to the list and announces it
	AddTask(task *domain.Task) error

	// CreateTask builds the right task variant from a request and adds it
	CreateTask(req CreateTaskRequest) (*domain.Task, error)

	// Tasks returns every task in insertion order
	Tasks() ([]*domain.Task, error)

	// DisplayTasks announces the rendered text of every task in order
	DisplayTasks() error

	// FindTask returns the first task with exactly the given title, or nil
	// when no task matches (absence, not an error)
	FindTask(title string) (*domain.Task, error)

	// UpdateTaskStatus sets the completion flag of the first task with the
	// given title; returns nil when no task matches
	UpdateTaskStatus(title string, completed bool) (*domain.Task, error)
}

// CreateTaskRequest represents the fields accepted when creating a task
type CreateTaskRequest struct {
	Title      string  `json:"title" binding:"required"`
	Kind       string  `json:"kind"`
	Priority   string  `json:"priority"`
	Recurrence string  `json:"recurrence"`
	ExtraNotes string  `json:"extra_notes"`
	RemindAt   *string `json:"remind_at"`
}
