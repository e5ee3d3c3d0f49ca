package control

import (
	"slices"

	"tower-simulator/internal/game/aircraft"
)

// Aircraft at or below this fuel percentage land ahead of ordinary traffic.
const CriticalFuelPercent = 20

// LandingQueue orders aircraft by their state at the time of the call rather
// than by a stored key, because fuel and emergency status change while an
// aircraft waits. Precedence, first match wins, earliest arrival breaks ties:
//
//  1. declared emergency
//  2. fuel at or below CriticalFuelPercent
//  3. passenger aircraft
//  4. everyone else
//
// Peek and Remove scan the whole queue, so each call is O(n).
type LandingQueue struct {
	aircraft []*aircraft.Aircraft // arrival order
}

func NewLandingQueue() *LandingQueue {
	return &LandingQueue{}
}

var landingRules = []func(*aircraft.Aircraft) bool{
	(*aircraft.Aircraft).HasEmergency,
	func(ac *aircraft.Aircraft) bool { return ac.FuelPercentRemaining() <= CriticalFuelPercent },
	(*aircraft.Aircraft).IsPassenger,
}

// selectNext returns the index of the aircraft that should land first, or
// -1 for an empty list.
func selectNext(list []*aircraft.Aircraft) int {
	if len(list) == 0 {
		return -1
	}
	for _, rule := range landingRules {
		if i := slices.IndexFunc(list, rule); i >= 0 {
			return i
		}
	}
	return 0
}

func (q *LandingQueue) Add(ac *aircraft.Aircraft) {
	q.aircraft = append(q.aircraft, ac)
}

func (q *LandingQueue) Peek() *aircraft.Aircraft {
	if i := selectNext(q.aircraft); i >= 0 {
		return q.aircraft[i]
	}
	return nil
}

func (q *LandingQueue) Remove() *aircraft.Aircraft {
	i := selectNext(q.aircraft)
	if i < 0 {
		return nil
	}
	ac := q.aircraft[i]
	q.aircraft = slices.Delete(q.aircraft, i, i+1)
	return ac
}

// InOrder returns the full landing order by repeatedly applying the
// selection rule to a private copy. The queue itself is left untouched.
func (q *LandingQueue) InOrder() []*aircraft.Aircraft {
	work := slices.Clone(q.aircraft)
	order := make([]*aircraft.Aircraft, 0, len(work))
	for len(work) > 0 {
		i := selectNext(work)
		order = append(order, work[i])
		work = slices.Delete(work, i, i+1)
	}
	return order
}

func (q *LandingQueue) Contains(ac *aircraft.Aircraft) bool {
	return indexOf(q.aircraft, ac) >= 0
}

func (q *LandingQueue) Len() int {
	return len(q.aircraft)
}

func (q *LandingQueue) Name() string {
	return LandingQueueName
}

func (q *LandingQueue) closedSet() {}

func (q *LandingQueue) String() string {
	return Format(q)
}
