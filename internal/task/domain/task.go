package domain

import (
	"fmt"
	"time"
)

// Priority represents task priority level
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Kind tags the task variant. All variants share the Task record; the tag
// decides the default priority and which extra fields show up in the rendering.
type Kind string

const (
	KindBasic     Kind = "basic"
	KindPriority  Kind = "priority"
	KindRecurring Kind = "recurring"
	KindSimple    Kind = "simple"
	KindAdvanced  Kind = "advanced"
)

// Task represents a to-do item. Title is the lookup key and is never written
// after construction; Completed only changes through UpdateStatus.
type Task struct {
	ID           string     `json:"id"`
	Kind         Kind       `json:"kind"`
	Title        string     `json:"title"`
	Completed    bool       `json:"completed"`
	Priority     Priority   `json:"priority"`
	Recurrence   string     `json:"recurrence,omitempty"`
	ExtraNotes   string     `json:"extra_notes,omitempty"`
	RemindAt     *time.Time `json:"remind_at,omitempty"`
	ReminderSent bool       `json:"reminder_sent"`
	CreatedAt    time.Time  `json:"created_at"`
}

// NewTask creates a base task with the default Medium priority.
func NewTask(title string) *Task {
	return &Task{Kind: KindBasic, Title: title, Priority: PriorityMedium}
}

// NewPriorityTask creates a task whose default priority is High.
func NewPriorityTask(title string) *Task {
	return &Task{Kind: KindPriority, Title: title, Priority: PriorityHigh}
}

// NewRecurringTask creates a task that repeats on the given recurrence
// (e.g. "Daily"); the recurrence is part of the rendered text.
func NewRecurringTask(title, recurrence string) *Task {
	return &Task{Kind: KindRecurring, Title: title, Priority: PriorityMedium, Recurrence: recurrence}
}

// NewSimpleTask creates a task identical in behavior to the base task.
func NewSimpleTask(title string) *Task {
	return &Task{Kind: KindSimple, Title: title, Priority: PriorityMedium}
}

// NewAdvancedTask creates a Low-priority task carrying free-form notes.
func NewAdvancedTask(title, extraNotes string) *Task {
	return &Task{Kind: KindAdvanced, Title: title, Priority: PriorityLow, ExtraNotes: extraNotes}
}

// UpdateStatus sets the completion flag. Always succeeds.
func (t *Task) UpdateStatus(completed bool) {
	t.Completed = completed
}

// StatusLabel returns "Completed" or "Pending" matching the completion flag.
func (t *Task) StatusLabel() string {
	if t.Completed {
		return "Completed"
	}
	return "Pending"
}

// String renders the task for display. Every kind shares the base rendering;
// recurring and advanced tasks append their extra field.
func (t *Task) String() string {
	s := fmt.Sprintf("Task: %s, Priority: %s, Status: %s", t.Title, t.Priority, t.StatusLabel())
	switch t.Kind {
	case KindRecurring:
		s += fmt.Sprintf(", Recurrence: %s", t.Recurrence)
	case KindAdvanced:
		s += fmt.Sprintf(", Notes: %s", t.ExtraNotes)
	}
	return s
}

// ParsePriority maps a priority label to a Priority. The canonical labels
// are normalized; any other non-empty label is free text and passes through
// unchanged. Empty defaults to Medium.
func ParsePriority(p string) Priority {
	switch p {
	case "", "Medium", "medium":
		return PriorityMedium
	case "High", "high":
		return PriorityHigh
	case "Low", "low":
		return PriorityLow
	default:
		return Priority(p)
	}
}

// ParseKind maps a kind label to a Kind, defaulting to the base kind.
func ParseKind(k string) Kind {
	switch Kind(k) {
	case KindPriority, KindRecurring, KindSimple, KindAdvanced:
		return Kind(k)
	default:
		return KindBasic
	}
}
