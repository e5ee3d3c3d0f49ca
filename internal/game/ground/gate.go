package ground

import (
	"errors"
	"fmt"
	"strconv"

	"tower-simulator/internal/game/aircraft"
)

var (
	ErrNoSpace        = errors.New("no space")
	ErrNoSuitableGate = errors.New("no suitable gate")
)

// EmptyGate is the occupant name encoded for a free gate.
const EmptyGate = "empty"

type Gate struct {
	Number   int
	Aircraft *aircraft.Aircraft
}

func NewGate(number int) *Gate {
	return &Gate{Number: number}
}

func (g *Gate) IsOccupied() bool {
	return g.Aircraft != nil
}

func (g *Gate) Park(ac *aircraft.Aircraft) error {
	if g.IsOccupied() {
		return fmt.Errorf("%w: gate %d is occupied, cannot park %s", ErrNoSpace, g.Number, ac.Callsign)
	}
	g.Aircraft = ac
	return nil
}

// Leave empties the gate.
func (g *Gate) Leave() {
	g.Aircraft = nil
}

func (g *Gate) occupant() string {
	if g.Aircraft == nil {
		return EmptyGate
	}
	return g.Aircraft.Callsign.String()
}

func (g *Gate) String() string {
	return fmt.Sprintf("Gate %d [%s]", g.Number, g.occupant())
}

// Encode returns "number:callsign", or "number:empty" for a free gate.
func (g *Gate) Encode() string {
	return strconv.Itoa(g.Number) + ":" + g.occupant()
}
