package control

import (
	"slices"

	"tower-simulator/internal/game/aircraft"
)

// TakeoffQueue releases aircraft strictly in the order they were added.
// Uniqueness is the caller's responsibility.
type TakeoffQueue struct {
	aircraft []*aircraft.Aircraft
}

func NewTakeoffQueue() *TakeoffQueue {
	return &TakeoffQueue{}
}

func (q *TakeoffQueue) Add(ac *aircraft.Aircraft) {
	q.aircraft = append(q.aircraft, ac)
}

func (q *TakeoffQueue) Peek() *aircraft.Aircraft {
	if len(q.aircraft) == 0 {
		return nil
	}
	return q.aircraft[0]
}

func (q *TakeoffQueue) Remove() *aircraft.Aircraft {
	if len(q.aircraft) == 0 {
		return nil
	}
	ac := q.aircraft[0]
	q.aircraft[0] = nil
	q.aircraft = q.aircraft[1:]
	return ac
}

func (q *TakeoffQueue) InOrder() []*aircraft.Aircraft {
	return slices.Clone(q.aircraft)
}

func (q *TakeoffQueue) Contains(ac *aircraft.Aircraft) bool {
	return indexOf(q.aircraft, ac) >= 0
}

func (q *TakeoffQueue) Len() int {
	return len(q.aircraft)
}

func (q *TakeoffQueue) Name() string {
	return TakeoffQueueName
}

func (q *TakeoffQueue) closedSet() {}

func (q *TakeoffQueue) String() string {
	return Format(q)
}
