package control

import (
	"strconv"
	"strings"

	"tower-simulator/internal/game/aircraft"
)

// AircraftQueue is implemented only by TakeoffQueue and LandingQueue. The
// queue holds references to aircraft owned by the tower; it never copies
// them. Peek and Remove return nil when the queue is empty.
type AircraftQueue interface {
	Add(ac *aircraft.Aircraft)
	Remove() *aircraft.Aircraft
	Peek() *aircraft.Aircraft
	InOrder() []*aircraft.Aircraft
	Contains(ac *aircraft.Aircraft) bool
	Len() int

	// Name is the identifier used as the queue's save-file header.
	Name() string

	closedSet()
}

const (
	TakeoffQueueName = "TakeoffQueue"
	LandingQueueName = "LandingQueue"
)

func indexOf(list []*aircraft.Aircraft, ac *aircraft.Aircraft) int {
	for i, q := range list {
		if q == ac {
			return i
		}
	}
	return -1
}

func callsigns(list []*aircraft.Aircraft) []string {
	cs := make([]string, len(list))
	for i, ac := range list {
		cs[i] = ac.Callsign.String()
	}
	return cs
}

// Format renders the queue in order, e.g. "LandingQueue [QFA1, UPS2]".
func Format(q AircraftQueue) string {
	return q.Name() + " [" + strings.Join(callsigns(q.InOrder()), ", ") + "]"
}

// Encode returns the queue's save-file block: a "Name:count" header followed,
// when the queue is not empty, by a line of comma-separated callsigns in
// queue order.
func Encode(q AircraftQueue) string {
	order := q.InOrder()
	s := q.Name() + ":" + strconv.Itoa(len(order))
	if len(order) > 0 {
		s += "\n" + strings.Join(callsigns(order), ",")
	}
	return s
}
