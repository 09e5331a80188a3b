package usecase

import (
	"fmt"
	"time"

	"todolist-backend/internal/task/domain"
	"todolist-backend/internal/task/repository"
	"todolist-backend/pkg/console"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
	out      console.Sink
}

// NewTaskUsecase creates a new instance of taskUsecase. Every observable
// notification ("Task added", "Tasks List:", "not found", "updated") goes
// through out.
func NewTaskUsecase(taskRepo repository.TaskRepository, out console.Sink) TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
		out:      out,
	}
}

func (u *taskUsecase) AddTask(task *domain.Task) error {
	if err := u.taskRepo.Append(task); err != nil {
		return err
	}
	u.out.Println(fmt.Sprintf("Task added: %s", task))
	return nil
}

func (u *taskUsecase) CreateTask(req CreateTaskRequest) (*domain.Task, error) {
	var task *domain.Task
	switch domain.ParseKind(req.Kind) {
	case domain.KindPriority:
		task = domain.NewPriorityTask(req.Title)
	case domain.KindRecurring:
		task = domain.NewRecurringTask(req.Title, req.Recurrence)
	case domain.KindSimple:
		task = domain.NewSimpleTask(req.Title)
	case domain.KindAdvanced:
		task = domain.NewAdvancedTask(req.Title, req.ExtraNotes)
	default:
		task = domain.NewTask(req.Title)
	}

	// An explicit priority overrides the variant default
	if req.Priority != "" {
		task.Priority = domain.ParsePriority(req.Priority)
	}

	if req.RemindAt != nil && *req.RemindAt != "" {
		if t, err := time.Parse(time.RFC3339, *req.RemindAt); err == nil {
			task.RemindAt = &t
		}
	}

	if err := u.AddTask(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) Tasks() ([]*domain.Task, error) {
	return u.taskRepo.All()
}

func (u *taskUsecase) DisplayTasks() error {
	tasks, err := u.taskRepo.All()
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		u.out.Println("No tasks available.")
		return nil
	}
	u.out.Println("Tasks List:")
	for _, task := range tasks {
		u.out.Println(task.String())
	}
	return nil
}

func (u *taskUsecase) FindTask(title string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByTitle(title)
	if err != nil {
		return nil, err
	}
	if task == nil {
		u.out.Println(fmt.Sprintf("Task '%s' not found.", title))
		return nil, nil
	}
	return task, nil
}

// UpdateTaskStatus mutates the completion flag inside the repository so the
// write happens under the same lock that guards concurrent readers. A missed
// title announces "not found" once and nothing else happens.
func (u *taskUsecase) UpdateTaskStatus(title string, completed bool) (*domain.Task, error) {
	task, err := u.taskRepo.SetCompletedByTitle(title, completed)
	if err != nil {
		return nil, err
	}
	if task == nil {
		u.out.Println(fmt.Sprintf("Task '%s' not found.", title))
		return nil, nil
	}
	u.out.Println(fmt.Sprintf("Task '%s' status updated to: %s", title, task.StatusLabel()))
	return task, nil
}
