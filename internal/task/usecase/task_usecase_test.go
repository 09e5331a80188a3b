package usecase

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"todolist-backend/internal/task/domain"
	"todolist-backend/internal/task/repository"
)

// recordingSink captures notification lines for assertions.
type recordingSink struct {
	lines []string
}

func (s *recordingSink) Println(line string) {
	s.lines = append(s.lines, line)
}

func newTestUsecase() (TaskUsecase, *recordingSink) {
	sink := &recordingSink{}
	repo := repository.NewMemoryTaskRepository(nil)
	return NewTaskUsecase(repo, sink), sink
}

func TestAddTaskNotifies(t *testing.T) {
	uc, sink := newTestUsecase()

	if err := uc.AddTask(domain.NewTask("Buy groceries")); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	if len(sink.lines) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(sink.lines))
	}
	want := "Task added: Task: Buy groceries, Priority: Medium, Status: Pending"
	if sink.lines[0] != want {
		t.Errorf("notification = %q, want %q", sink.lines[0], want)
	}
}

func TestDisplayTasksEmpty(t *testing.T) {
	uc, sink := newTestUsecase()

	if err := uc.DisplayTasks(); err != nil {
		t.Fatalf("DisplayTasks failed: %v", err)
	}
	if len(sink.lines) != 1 || sink.lines[0] != "No tasks available." {
		t.Errorf("expected single 'No tasks available.' line, got %v", sink.lines)
	}
}

func TestDisplayTasksListsAllInOrder(t *testing.T) {
	uc, sink := newTestUsecase()

	uc.AddTask(domain.NewTask("one"))
	uc.AddTask(domain.NewTask("two"))
	uc.AddTask(domain.NewTask("three"))
	sink.lines = nil

	if err := uc.DisplayTasks(); err != nil {
		t.Fatalf("DisplayTasks failed: %v", err)
	}

	// Header plus one line per task, insertion order
	if len(sink.lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %v", len(sink.lines), sink.lines)
	}
	if sink.lines[0] != "Tasks List:" {
		t.Errorf("expected header, got %q", sink.lines[0])
	}
	for i, title := range []string{"one", "two", "three"} {
		if !strings.Contains(sink.lines[i+1], title) {
			t.Errorf("line %d should mention %q, got %q", i+1, title, sink.lines[i+1])
		}
	}
}

func TestFindTaskAbsent(t *testing.T) {
	uc, sink := newTestUsecase()

	task, err := uc.FindTask("ghost")
	if err != nil {
		t.Fatalf("FindTask failed: %v", err)
	}
	if task != nil {
		t.Fatalf("expected nil for absent title, got %v", task)
	}
	if len(sink.lines) != 1 || sink.lines[0] != "Task 'ghost' not found." {
		t.Errorf("expected not-found notification, got %v", sink.lines)
	}

	// Lookup must not mutate the list
	tasks, err := uc.Tasks()
	if err != nil {
		t.Fatalf("Tasks failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected list untouched, got %d tasks", len(tasks))
	}
}

func TestUpdateTaskStatusOnlyTouchesMatch(t *testing.T) {
	uc, sink := newTestUsecase()

	uc.AddTask(domain.NewTask("keep me"))
	uc.AddTask(domain.NewTask("flip me"))
	uc.AddTask(domain.NewRecurringTask("and me", "Daily"))
	sink.lines = nil

	task, err := uc.UpdateTaskStatus("flip me", true)
	if err != nil {
		t.Fatalf("UpdateTaskStatus failed: %v", err)
	}
	if task == nil || !task.Completed {
		t.Fatalf("expected 'flip me' completed, got %v", task)
	}
	if len(sink.lines) != 1 || sink.lines[0] != "Task 'flip me' status updated to: Completed" {
		t.Errorf("expected updated notification, got %v", sink.lines)
	}

	tasks, _ := uc.Tasks()
	for _, other := range tasks {
		if other.Title != "flip me" && other.Completed {
			t.Errorf("task %q should be untouched", other.Title)
		}
	}
}

func TestUpdateTaskStatusAbsentTitle(t *testing.T) {
	uc, sink := newTestUsecase()
	uc.AddTask(domain.NewTask("only one"))
	sink.lines = nil

	task, err := uc.UpdateTaskStatus("missing", true)
	if err != nil {
		t.Fatalf("UpdateTaskStatus failed: %v", err)
	}
	if task != nil {
		t.Fatalf("expected nil for absent title, got %v", task)
	}

	// The internal lookup's not-found line is the only observable effect
	if len(sink.lines) != 1 || sink.lines[0] != "Task 'missing' not found." {
		t.Errorf("expected single not-found notification, got %v", sink.lines)
	}

	tasks, _ := uc.Tasks()
	if len(tasks) != 1 || tasks[0].Completed {
		t.Error("expected list unchanged on absent update")
	}
}

func TestCreateTaskBuildsVariants(t *testing.T) {
	tests := []struct {
		name         string
		req          CreateTaskRequest
		wantKind     domain.Kind
		wantPriority domain.Priority
	}{
		{"basic by default", CreateTaskRequest{Title: "a"}, domain.KindBasic, domain.PriorityMedium},
		{"priority kind defaults High", CreateTaskRequest{Title: "b", Kind: "priority"}, domain.KindPriority, domain.PriorityHigh},
		{"recurring keeps Medium", CreateTaskRequest{Title: "c", Kind: "recurring", Recurrence: "Daily"}, domain.KindRecurring, domain.PriorityMedium},
		{"simple matches base", CreateTaskRequest{Title: "d", Kind: "simple"}, domain.KindSimple, domain.PriorityMedium},
		{"advanced defaults Low", CreateTaskRequest{Title: "e", Kind: "advanced", ExtraNotes: "n"}, domain.KindAdvanced, domain.PriorityLow},
		{"explicit priority overrides default", CreateTaskRequest{Title: "f", Kind: "advanced", Priority: "High"}, domain.KindAdvanced, domain.PriorityHigh},
		{"free-text priority passes through", CreateTaskRequest{Title: "g", Priority: "urgent"}, domain.KindBasic, domain.Priority("urgent")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUsecase()
			task, err := uc.CreateTask(tt.req)
			if err != nil {
				t.Fatalf("CreateTask failed: %v", err)
			}
			if task.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", task.Kind, tt.wantKind)
			}
			if task.Priority != tt.wantPriority {
				t.Errorf("Priority = %q, want %q", task.Priority, tt.wantPriority)
			}
		})
	}
}

// Exercises the single-lock guarantee: status writes stay inside the
// repository mutex and readers get snapshots, so concurrent update and
// list-plus-encode must be race-free (run with -race).
func TestConcurrentUpdateAndList(t *testing.T) {
	uc, _ := newTestUsecase()
	uc.AddTask(domain.NewTask("shared"))

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			if _, err := uc.UpdateTaskStatus("shared", i%2 == 0); err != nil {
				t.Errorf("UpdateTaskStatus failed: %v", err)
				return
			}
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			tasks, err := uc.Tasks()
			if err != nil {
				t.Errorf("Tasks failed: %v", err)
				return
			}
			if _, err := json.Marshal(tasks); err != nil {
				t.Errorf("Marshal failed: %v", err)
				return
			}
		}
	}()

	wg.Wait()
}

func TestCreateTaskParsesRemindAt(t *testing.T) {
	uc, _ := newTestUsecase()

	at := "2030-01-02T15:04:05Z"
	task, err := uc.CreateTask(CreateTaskRequest{Title: "remind me", RemindAt: &at})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if task.RemindAt == nil {
		t.Fatal("expected RemindAt to be set")
	}
	if got := task.RemindAt.Format("2006-01-02T15:04:05Z"); got != at {
		t.Errorf("RemindAt = %s, want %s", got, at)
	}
}
