package tasks

import (
	"fmt"
	"strconv"
)

type TaskType int

const (
	WAIT TaskType = iota
	LOAD
	TAKEOFF
	AWAY
	LAND
)

var TaskTypeStringMap = map[TaskType]string{
	WAIT:    "WAIT",
	LOAD:    "LOAD",
	TAKEOFF: "TAKEOFF",
	AWAY:    "AWAY",
	LAND:    "LAND",
}

// AllTaskTypes lists every task type in declaration order.
var AllTaskTypes = []TaskType{WAIT, LOAD, TAKEOFF, AWAY, LAND}

func (t TaskType) String() string {
	if s, ok := TaskTypeStringMap[t]; ok {
		return s
	}
	return "TaskType(" + strconv.Itoa(int(t)) + ")"
}

// ParseTaskType maps an exact, upper-case task name to its type.
func ParseTaskType(s string) (TaskType, bool) {
	for t, name := range TaskTypeStringMap {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

// Task is one step of an aircraft's operating cycle. LoadPercent is only
// meaningful for LOAD tasks and is zero otherwise. Tasks are values: two tasks
// are equal when both fields match.
type Task struct {
	Type        TaskType
	LoadPercent int
}

func NewTask(t TaskType) Task {
	return Task{Type: t}
}

func NewLoadTask(percent int) Task {
	return Task{Type: LOAD, LoadPercent: percent}
}

func (t Task) String() string {
	if t.Type == LOAD {
		return fmt.Sprintf("%s at %d%%", t.Type, t.LoadPercent)
	}
	return t.Type.String()
}

// Encode returns the save-file form of the task: the bare type name, or
// LOAD@<percent> for loading tasks.
func (t Task) Encode() string {
	if t.Type == LOAD {
		return "LOAD@" + strconv.Itoa(t.LoadPercent)
	}
	return t.Type.String()
}
