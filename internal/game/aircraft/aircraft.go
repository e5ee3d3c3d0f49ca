package aircraft

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"tower-simulator/internal/game/tasks"
	"tower-simulator/pkg/types"
)

var (
	ErrInvalidCallsign = errors.New("invalid callsign")
	ErrInvalidFuel     = errors.New("fuel amount out of range")
	ErrInvalidCargo    = errors.New("cargo amount out of range")
)

// Fraction of fuel capacity burnt per tick while AWAY.
const awayFuelBurn = 0.1

// Aircraft is shared by reference between the tower's aircraft list, its
// queues and the loading map, so fuel and emergency changes made here are
// seen by every holder. The callsign must not change while the aircraft is
// held by any of them.
type Aircraft struct {
	Callsign        types.AircraftID
	Characteristics *Characteristics
	TaskList        *tasks.TaskList
	FuelAmount      float64
	Cargo           int // passengers, or kilograms of freight
	Emergency       bool
}

func NewAircraft(callsign types.AircraftID, c *Characteristics, tl *tasks.TaskList, fuel float64, cargo int) (*Aircraft, error) {
	if !callsign.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCallsign, callsign)
	}
	if math.IsNaN(fuel) || fuel < 0 || fuel > c.FuelCapacity {
		return nil, fmt.Errorf("%w: %.2f not in [0, %.2f]", ErrInvalidFuel, fuel, c.FuelCapacity)
	}
	if cargo < 0 || cargo > c.CargoCapacity() {
		return nil, fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidCargo, cargo, c.CargoCapacity())
	}
	return &Aircraft{
		Callsign:        callsign,
		Characteristics: c,
		TaskList:        tl,
		FuelAmount:      fuel,
		Cargo:           cargo,
	}, nil
}

func (ac *Aircraft) IsPassenger() bool {
	return ac.Characteristics.CarriesPassengers()
}

func (ac *Aircraft) IsHelicopter() bool {
	return ac.Characteristics.Type == HELICOPTER
}

func (ac *Aircraft) HasEmergency() bool {
	return ac.Emergency
}

func (ac *Aircraft) DeclareEmergency() {
	ac.Emergency = true
}

func (ac *Aircraft) ClearEmergency() {
	ac.Emergency = false
}

// FuelPercentRemaining is the remaining fuel as a rounded percentage of
// capacity.
func (ac *Aircraft) FuelPercentRemaining() int {
	return int(math.Round(100 * ac.FuelAmount / ac.Characteristics.FuelCapacity))
}

// OccupancyLevel is the cargo on board as a rounded percentage of capacity.
func (ac *Aircraft) OccupancyLevel() int {
	capacity := ac.Characteristics.CargoCapacity()
	if capacity == 0 {
		return 0
	}
	return int(math.Round(100 * float64(ac.Cargo) / float64(capacity)))
}

// cargoToLoad is the cargo amount the current task would bring on board,
// never more than the aircraft can carry.
func (ac *Aircraft) cargoToLoad() int {
	capacity := ac.Characteristics.CargoCapacity()
	pct := ac.TaskList.CurrentTask().LoadPercent
	return min(capacity, int(math.Round(float64(capacity)*float64(pct)/100)))
}

// LoadingTime is the number of ticks the current LOAD task takes at a gate.
func (ac *Aircraft) LoadingTime() int {
	amount := ac.cargoToLoad()
	if ac.IsPassenger() {
		if amount <= 1 {
			return 1
		}
		return max(1, int(math.Round(math.Log10(float64(amount)))))
	}
	switch {
	case amount < 1000:
		return 1
	case amount <= 50000:
		return 2
	default:
		return 3
	}
}

// Tick applies one tick of the current task: AWAY burns fuel, LOAD refuels
// proportionally to the loading time.
func (ac *Aircraft) Tick() {
	capacity := ac.Characteristics.FuelCapacity
	switch ac.TaskList.CurrentTask().Type {
	case tasks.AWAY:
		ac.FuelAmount = max(0, ac.FuelAmount-awayFuelBurn*capacity)
	case tasks.LOAD:
		pct := float64(ac.TaskList.CurrentTask().LoadPercent)
		perTick := capacity * pct / 100 / float64(ac.LoadingTime())
		ac.FuelAmount = min(capacity, ac.FuelAmount+perTick)
	}
}

// Load brings on board the cargo specified by the current LOAD task.
func (ac *Aircraft) Load() {
	ac.Cargo = ac.cargoToLoad()
}

func (ac *Aircraft) Unload() {
	ac.Cargo = 0
}

func (ac *Aircraft) String() string {
	s := fmt.Sprintf("%s %s %s", ac.Characteristics.Type, ac.Callsign, ac.Characteristics.Name)
	s += " " + ac.TaskList.CurrentTask().Type.String()
	if ac.Emergency {
		s += " (EMERGENCY)"
	}
	return s
}

// Encode returns the aircraft's save-file line:
//
//	callsign:model:tasks:fuel:emergency:cargo
func (ac *Aircraft) Encode() string {
	return fmt.Sprintf("%s:%s:%s:%.2f:%s:%d",
		ac.Callsign,
		ac.Characteristics.Name,
		ac.TaskList.Encode(),
		ac.FuelAmount,
		strconv.FormatBool(ac.Emergency),
		ac.Cargo)
}
