package tasks

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrInvalidTaskSequence = errors.New("invalid task sequence")

// allowedNext is the transition table of the operating cycle. It is applied
// cyclically, so the last task must also be able to precede the first.
var allowedNext = map[TaskType][]TaskType{
	TAKEOFF: {AWAY},
	AWAY:    {AWAY, LAND},
	LAND:    {WAIT, LOAD},
	WAIT:    {WAIT, LOAD},
	LOAD:    {TAKEOFF},
}

// CanFollow reports whether a task of type next may come directly after a
// task of type from.
func CanFollow(from, next TaskType) bool {
	return slices.Contains(allowedNext[from], next)
}

// TaskList is the circular sequence of tasks an aircraft repeats. The list is
// never empty and Current always indexes into it.
type TaskList struct {
	tasks   []Task
	current int
}

// NewTaskList validates the cycle and returns a list positioned on its first
// task. The slice is copied.
func NewTaskList(tasks []Task) (*TaskList, error) {
	if len(tasks) == 0 {
		return nil, fmt.Errorf("%w: no tasks", ErrInvalidTaskSequence)
	}
	for i, t := range tasks {
		next := tasks[(i+1)%len(tasks)]
		if !CanFollow(t.Type, next.Type) {
			return nil, fmt.Errorf("%w: %s cannot be followed by %s (position %d)",
				ErrInvalidTaskSequence, t.Type, next.Type, i+1)
		}
	}
	return &TaskList{tasks: slices.Clone(tasks)}, nil
}

// MustTaskList is NewTaskList for fixed sequences known to be valid.
func MustTaskList(tasks ...Task) *TaskList {
	tl, err := NewTaskList(tasks)
	if err != nil {
		panic(err)
	}
	return tl
}

func (tl *TaskList) CurrentTask() Task {
	return tl.tasks[tl.current]
}

func (tl *TaskList) NextTask() Task {
	return tl.tasks[(tl.current+1)%len(tl.tasks)]
}

func (tl *TaskList) MoveToNextTask() {
	tl.current = (tl.current + 1) % len(tl.tasks)
}

// CurrentIndex is the zero-based position of the current task.
func (tl *TaskList) CurrentIndex() int {
	return tl.current
}

func (tl *TaskList) Len() int {
	return len(tl.tasks)
}

// Tasks returns a copy of the cycle in order, starting from the first task
// rather than the current one.
func (tl *TaskList) Tasks() []Task {
	return slices.Clone(tl.tasks)
}

func (tl *TaskList) String() string {
	return fmt.Sprintf("TaskList currently on %s [%d/%d]", tl.CurrentTask(), tl.current+1, len(tl.tasks))
}

// Encode writes the whole cycle as a comma-separated list. The current
// position is not part of the encoding.
func (tl *TaskList) Encode() string {
	parts := make([]string, len(tl.tasks))
	for i, t := range tl.tasks {
		parts[i] = t.Encode()
	}
	return strings.Join(parts, ",")
}
