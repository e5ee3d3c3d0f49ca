package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaskListRejectsEmpty(t *testing.T) {
	_, err := NewTaskList(nil)
	require.ErrorIs(t, err, ErrInvalidTaskSequence)

	_, err = NewTaskList([]Task{})
	require.ErrorIs(t, err, ErrInvalidTaskSequence)
}

func TestTransitionTable(t *testing.T) {
	legal := map[[2]TaskType]bool{
		{TAKEOFF, AWAY}: true,
		{AWAY, AWAY}:    true,
		{AWAY, LAND}:    true,
		{LAND, WAIT}:    true,
		{LAND, LOAD}:    true,
		{WAIT, WAIT}:    true,
		{WAIT, LOAD}:    true,
		{LOAD, TAKEOFF}: true,
	}

	for _, from := range AllTaskTypes {
		for _, next := range AllTaskTypes {
			assert.Equal(t, legal[[2]TaskType{from, next}], CanFollow(from, next), "%s -> %s", from, next)
		}
	}
}

func TestTwoElementListsCheckBothDirections(t *testing.T) {
	for _, a := range AllTaskTypes {
		for _, b := range AllTaskTypes {
			_, err := NewTaskList([]Task{NewTask(a), NewTask(b)})
			if CanFollow(a, b) && CanFollow(b, a) {
				assert.NoError(t, err, "%s,%s", a, b)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTaskSequence, "%s,%s", a, b)
			}
		}
	}
}

func TestSelfLoopingSingletons(t *testing.T) {
	for _, tt := range AllTaskTypes {
		_, err := NewTaskList([]Task{NewTask(tt)})
		if tt == AWAY || tt == WAIT {
			assert.NoError(t, err, tt.String())
		} else {
			assert.ErrorIs(t, err, ErrInvalidTaskSequence, tt.String())
		}
	}
}

func TestWrapAroundIsValidated(t *testing.T) {
	// Every adjacent pair is legal but LAND cannot be followed by TAKEOFF.
	_, err := NewTaskList([]Task{NewTask(TAKEOFF), NewTask(AWAY), NewTask(LAND)})
	require.ErrorIs(t, err, ErrInvalidTaskSequence)
}

func TestCursorMovesCircularly(t *testing.T) {
	tl := MustTaskList(NewTask(WAIT), NewLoadTask(75), NewTask(TAKEOFF), NewTask(AWAY), NewTask(LAND))

	assert.Equal(t, NewTask(WAIT), tl.CurrentTask())
	assert.Equal(t, NewLoadTask(75), tl.NextTask())
	assert.Equal(t, NewTask(WAIT), tl.CurrentTask(), "NextTask must not move the cursor")

	for i := 0; i < tl.Len(); i++ {
		tl.MoveToNextTask()
	}
	assert.Equal(t, NewTask(WAIT), tl.CurrentTask())
	assert.Equal(t, 0, tl.CurrentIndex())

	tl.MoveToNextTask()
	tl.MoveToNextTask()
	tl.MoveToNextTask()
	tl.MoveToNextTask()
	assert.Equal(t, NewTask(LAND), tl.CurrentTask())
	assert.Equal(t, NewTask(WAIT), tl.NextTask())
}

func TestNewTaskListCopiesInput(t *testing.T) {
	in := []Task{NewTask(AWAY), NewTask(LAND), NewTask(LOAD), NewTask(TAKEOFF)}
	tl, err := NewTaskList(in)
	require.NoError(t, err)

	in[0] = NewTask(WAIT)
	assert.Equal(t, NewTask(AWAY), tl.CurrentTask())

	out := tl.Tasks()
	out[1] = NewTask(WAIT)
	assert.Equal(t, NewTask(LAND), tl.NextTask())
}

func TestTaskEncodingAndEquality(t *testing.T) {
	assert.Equal(t, "LOAD@60", NewLoadTask(60).Encode())
	assert.Equal(t, "LOAD@0", NewTask(LOAD).Encode())
	assert.Equal(t, "AWAY", NewTask(AWAY).Encode())
	assert.Equal(t, "LOAD at 60%", NewLoadTask(60).String())
	assert.Equal(t, "TAKEOFF", NewTask(TAKEOFF).String())

	assert.Equal(t, NewLoadTask(60), Task{Type: LOAD, LoadPercent: 60})
	assert.NotEqual(t, NewLoadTask(60), NewLoadTask(61))

	seen := map[Task]int{NewLoadTask(60): 1}
	seen[Task{Type: LOAD, LoadPercent: 60}]++
	assert.Len(t, seen, 1)
}

func TestTaskListEncodeAndString(t *testing.T) {
	tl := MustTaskList(NewTask(AWAY), NewTask(LAND), NewTask(WAIT), NewLoadTask(60), NewTask(TAKEOFF))
	assert.Equal(t, "AWAY,LAND,WAIT,LOAD@60,TAKEOFF", tl.Encode())

	tl.MoveToNextTask()
	assert.Equal(t, "TaskList currently on LAND [2/5]", tl.String())
	assert.Equal(t, "AWAY,LAND,WAIT,LOAD@60,TAKEOFF", tl.Encode(), "encoding ignores the cursor")
}

func TestParseTaskType(t *testing.T) {
	for _, tt := range AllTaskTypes {
		got, ok := ParseTaskType(tt.String())
		require.True(t, ok)
		assert.Equal(t, tt, got)
	}

	for _, bad := range []string{"", "away", "WANT", "LAUGH", "TAKE@OFF"} {
		_, ok := ParseTaskType(bad)
		assert.False(t, ok, bad)
	}
}
