package ground

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"tower-simulator/internal/game/aircraft"
)

const MAX_GATES = 6

type TerminalKind int

const (
	AIRPLANE_TERMINAL TerminalKind = iota
	HELICOPTER_TERMINAL
)

var TerminalKindStringMap = map[TerminalKind]string{
	AIRPLANE_TERMINAL:   "AirplaneTerminal",
	HELICOPTER_TERMINAL: "HelicopterTerminal",
}

func (k TerminalKind) String() string {
	return TerminalKindStringMap[k]
}

// ParseTerminalKind maps a save-file terminal type name to its kind.
func ParseTerminalKind(s string) (TerminalKind, bool) {
	for k, name := range TerminalKindStringMap {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

type Terminal struct {
	Kind      TerminalKind
	Number    int
	Emergency bool

	gates []*Gate
}

func NewTerminal(kind TerminalKind, number int) *Terminal {
	return &Terminal{Kind: kind, Number: number}
}

func (t *Terminal) AddGate(g *Gate) error {
	if len(t.gates) >= MAX_GATES {
		return fmt.Errorf("%w: maximum number of gates reached (%d)", ErrNoSpace, MAX_GATES)
	}
	t.gates = append(t.gates, g)
	return nil
}

// Gates returns the terminal's gates in the order they were added. The slice
// is a copy; the gates are shared.
func (t *Terminal) Gates() []*Gate {
	return append([]*Gate(nil), t.gates...)
}

func (t *Terminal) FindUnoccupiedGate() (*Gate, error) {
	for _, g := range t.gates {
		if !g.IsOccupied() {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w: no unoccupied gate in terminal %d", ErrNoSuitableGate, t.Number)
}

// Accepts reports whether aircraft of this kind may park here: airplanes use
// airplane terminals and helicopters helicopter terminals.
func (t *Terminal) Accepts(ac *aircraft.Aircraft) bool {
	if ac.IsHelicopter() {
		return t.Kind == HELICOPTER_TERMINAL
	}
	return t.Kind == AIRPLANE_TERMINAL
}

func (t *Terminal) HasEmergency() bool {
	return t.Emergency
}

func (t *Terminal) DeclareEmergency() {
	t.Emergency = true
}

func (t *Terminal) ClearEmergency() {
	t.Emergency = false
}

// OccupancyLevel is the rounded percentage of occupied gates; a terminal
// without gates is 0% occupied.
func (t *Terminal) OccupancyLevel() int {
	if len(t.gates) == 0 {
		return 0
	}
	occupied := 0
	for _, g := range t.gates {
		if g.IsOccupied() {
			occupied++
		}
	}
	return int(math.Round(100 * float64(occupied) / float64(len(t.gates))))
}

func (t *Terminal) String() string {
	s := fmt.Sprintf("%s %d, %d gates", t.Kind, t.Number, len(t.gates))
	if t.Emergency {
		s += " (EMERGENCY)"
	}
	return s
}

// Encode returns the terminal header followed by one line per gate:
//
//	Kind:number:emergency:gateCount
//	gateNumber:callsign|empty
func (t *Terminal) Encode() string {
	lines := make([]string, 0, len(t.gates)+1)
	lines = append(lines, fmt.Sprintf("%s:%d:%s:%d",
		t.Kind, t.Number, strconv.FormatBool(t.Emergency), len(t.gates)))
	for _, g := range t.gates {
		lines = append(lines, g.Encode())
	}
	return strings.Join(lines, "\n")
}

// FindGate returns a free gate suitable for the aircraft among terminals that
// are not in an emergency, searching in order.
func FindGate(terminals []*Terminal, ac *aircraft.Aircraft) (*Gate, error) {
	for _, t := range terminals {
		if t.Emergency || !t.Accepts(ac) {
			continue
		}
		if g, err := t.FindUnoccupiedGate(); err == nil {
			return g, nil
		}
	}
	return nil, fmt.Errorf("%w for %s", ErrNoSuitableGate, ac.Callsign)
}

// GateOf returns the gate the aircraft is parked at, or nil.
func GateOf(terminals []*Terminal, ac *aircraft.Aircraft) *Gate {
	for _, t := range terminals {
		for _, g := range t.gates {
			if g.Aircraft == ac {
				return g
			}
		}
	}
	return nil
}
