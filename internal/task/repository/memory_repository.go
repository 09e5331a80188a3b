package repository

import (
	"sync"
	"time"

	"todolist-backend/internal/task/domain"

	"github.com/google/uuid"
)

// memoryTaskRepository implements TaskRepository with an in-process ordered
// slice. Insertion order is preserved and duplicate titles are permitted.
// A single mutex guards every operation so a concurrent embedder (the HTTP
// layer, the reminder scheduler) can share one instance. Reads hand out
// copies: stored tasks are only ever mutated under the lock, through
// SetCompletedByTitle and MarkReminderSent.
type memoryTaskRepository struct {
	mu    sync.Mutex
	tasks []*domain.Task
	now   func() time.Time
}

// NewMemoryTaskRepository creates an in-memory TaskRepository. The clock
// supplies task creation timestamps; pass nil to use time.Now.
func NewMemoryTaskRepository(now func() time.Time) TaskRepository {
	if now == nil {
		now = time.Now
	}
	return &memoryTaskRepository{now: now}
}

func snapshot(task *domain.Task) *domain.Task {
	c := *task
	return &c
}

func (r *memoryTaskRepository) Append(task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = r.now()
	}
	r.tasks = append(r.tasks, task)
	return nil
}

func (r *memoryTaskRepository) All() ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Task, len(r.tasks))
	for i, task := range r.tasks {
		out[i] = snapshot(task)
	}
	return out, nil
}

func (r *memoryTaskRepository) FindByTitle(title string) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, task := range r.tasks {
		if task.Title == title {
			return snapshot(task), nil
		}
	}
	return nil, nil
}

func (r *memoryTaskRepository) SetCompletedByTitle(title string, completed bool) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, task := range r.tasks {
		if task.Title == title {
			task.Completed = completed
			return snapshot(task), nil
		}
	}
	return nil, nil
}

func (r *memoryTaskRepository) FindPendingReminders(now time.Time) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var due []*domain.Task
	for _, task := range r.tasks {
		if task.RemindAt == nil || task.ReminderSent || task.Completed {
			continue
		}
		if !task.RemindAt.After(now) {
			due = append(due, snapshot(task))
		}
	}
	return due, nil
}

func (r *memoryTaskRepository) MarkReminderSent(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, task := range r.tasks {
		if task.ID == id {
			task.ReminderSent = true
			return nil
		}
	}
	return nil
}
