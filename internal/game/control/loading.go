package control

import (
	"fmt"
	"strconv"
	"strings"

	"tower-simulator/internal/game/aircraft"
)

const LoadingAircraftName = "LoadingAircraft"

// LoadingAircraft tracks aircraft being loaded at a gate and the ticks each
// has left. Entries keep the order they were added in so the map encodes
// deterministically; the order carries no other meaning.
type LoadingAircraft struct {
	order []*aircraft.Aircraft
	ticks map[*aircraft.Aircraft]int
}

func NewLoadingAircraft() *LoadingAircraft {
	return &LoadingAircraft{ticks: make(map[*aircraft.Aircraft]int)}
}

// Set records the remaining ticks for an aircraft, adding it if needed.
// Remaining ticks must be at least one.
func (l *LoadingAircraft) Set(ac *aircraft.Aircraft, ticks int) error {
	if ticks < 1 {
		return fmt.Errorf("%s: loading ticks remaining must be at least 1, got %d", ac.Callsign, ticks)
	}
	if _, ok := l.ticks[ac]; !ok {
		l.order = append(l.order, ac)
	}
	l.ticks[ac] = ticks
	return nil
}

func (l *LoadingAircraft) Get(ac *aircraft.Aircraft) (int, bool) {
	t, ok := l.ticks[ac]
	return t, ok
}

func (l *LoadingAircraft) Contains(ac *aircraft.Aircraft) bool {
	_, ok := l.ticks[ac]
	return ok
}

func (l *LoadingAircraft) Delete(ac *aircraft.Aircraft) {
	if _, ok := l.ticks[ac]; !ok {
		return
	}
	delete(l.ticks, ac)
	if i := indexOf(l.order, ac); i >= 0 {
		l.order = append(l.order[:i], l.order[i+1:]...)
	}
}

func (l *LoadingAircraft) Len() int {
	return len(l.order)
}

// Aircraft returns the loading aircraft in insertion order.
func (l *LoadingAircraft) Aircraft() []*aircraft.Aircraft {
	return append([]*aircraft.Aircraft(nil), l.order...)
}

// Tick counts every entry down by one and removes and returns the aircraft
// whose loading has finished.
func (l *LoadingAircraft) Tick() []*aircraft.Aircraft {
	var done []*aircraft.Aircraft
	for _, ac := range l.Aircraft() {
		l.ticks[ac]--
		if l.ticks[ac] <= 0 {
			l.Delete(ac)
			done = append(done, ac)
		}
	}
	return done
}

// Encode returns the "LoadingAircraft:count" header and, if any aircraft are
// loading, a line of comma-separated callsign:ticks pairs.
func (l *LoadingAircraft) Encode() string {
	s := LoadingAircraftName + ":" + strconv.Itoa(len(l.order))
	if len(l.order) > 0 {
		pairs := make([]string, len(l.order))
		for i, ac := range l.order {
			pairs[i] = fmt.Sprintf("%s:%d", ac.Callsign, l.ticks[ac])
		}
		s += "\n" + strings.Join(pairs, ",")
	}
	return s
}
