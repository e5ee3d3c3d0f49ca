package simulation

import (
	"errors"
	"fmt"

	"github.com/labstack/gommon/log"

	"tower-simulator/internal/game/aircraft"
	"tower-simulator/internal/game/control"
	"tower-simulator/internal/game/ground"
	"tower-simulator/internal/game/tasks"
	"tower-simulator/pkg/types"
)

var (
	ErrNoAircraftForCallsign = errors.New("no aircraft exists with specified callsign")
	ErrNoTerminalForNumber   = errors.New("no terminal exists with specified number")
	ErrDuplicateCallsign     = errors.New("an aircraft with that callsign already exists")
)

// Simulation is the control tower: it owns the aircraft and terminals and
// drives them through their task cycles one tick at a time. It is not safe
// for concurrent use.
type Simulation struct {
	Ticks     int64
	Aircraft  []*aircraft.Aircraft
	Terminals []*ground.Terminal

	TakeoffQueue *control.TakeoffQueue
	LandingQueue *control.LandingQueue
	Loading      *control.LoadingAircraft

	Landings int
	Takeoffs int
	RadioLog []RadioMessage

	maxRadioLogSize int
}

func NewSimulation() *Simulation {
	return &Simulation{
		TakeoffQueue:    control.NewTakeoffQueue(),
		LandingQueue:    control.NewLandingQueue(),
		Loading:         control.NewLoadingAircraft(),
		maxRadioLogSize: 50,
	}
}

// AddAircraft registers an aircraft with the tower. It joins a queue or the
// loading map on the next tick if its current task calls for one.
func (s *Simulation) AddAircraft(ac *aircraft.Aircraft) error {
	if _, ok := s.FindAircraft(ac.Callsign); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCallsign, ac.Callsign)
	}
	s.Aircraft = append(s.Aircraft, ac)
	return nil
}

func (s *Simulation) AddTerminal(t *ground.Terminal) {
	s.Terminals = append(s.Terminals, t)
}

func (s *Simulation) FindAircraft(callsign types.AircraftID) (*aircraft.Aircraft, bool) {
	for _, ac := range s.Aircraft {
		if ac.Callsign == callsign {
			return ac, true
		}
	}
	return nil, false
}

func (s *Simulation) FindTerminal(number int) (*ground.Terminal, bool) {
	for _, t := range s.Terminals {
		if t.Number == number {
			return t, true
		}
	}
	return nil, false
}

// Tick advances the tower by one step.
func (s *Simulation) Tick() {
	for _, ac := range s.Aircraft {
		ac.Tick()
		switch ac.TaskList.CurrentTask().Type {
		case tasks.AWAY, tasks.WAIT:
			ac.TaskList.MoveToNextTask()
		}
	}

	for _, ac := range s.Loading.Tick() {
		ac.Load()
		ac.TaskList.MoveToNextTask()
		log.Debugf("LOADED: %s finished loading", ac.Callsign)
	}

	if s.Ticks%2 == 0 {
		if !s.tryLandAircraft() {
			s.tryTakeOffAircraft()
		}
	} else {
		s.tryTakeOffAircraft()
	}

	for _, ac := range s.Aircraft {
		s.placeInQueues(ac)
	}
	s.Ticks++
}

func (s *Simulation) tryLandAircraft() bool {
	ac := s.LandingQueue.Peek()
	if ac == nil {
		return false
	}
	gate, err := ground.FindGate(s.Terminals, ac)
	if err != nil {
		log.Debugf("HOLD: %s: %v", ac.Callsign, err)
		return false
	}
	if err := gate.Park(ac); err != nil {
		log.Warnf("HOLD: %s: %v", ac.Callsign, err)
		return false
	}
	s.LandingQueue.Remove()
	ac.Unload()
	ac.TaskList.MoveToNextTask()
	s.Landings++
	s.AddRadioMessage(ac.Callsign, fmt.Sprintf("Cleared to land, taxi to gate %d.", gate.Number), ac.HasEmergency())
	log.Infof("LANDED: %s parked at gate %d", ac.Callsign, gate.Number)
	return true
}

func (s *Simulation) tryTakeOffAircraft() bool {
	ac := s.TakeoffQueue.Remove()
	if ac == nil {
		return false
	}
	if gate := ground.GateOf(s.Terminals, ac); gate != nil {
		gate.Leave()
	}
	ac.TaskList.MoveToNextTask()
	s.Takeoffs++
	s.AddRadioMessage(ac.Callsign, "Cleared for takeoff.", false)
	log.Infof("DEPARTED: %s", ac.Callsign)
	return true
}

// placeInQueues queues an aircraft whose current task needs the runway, or
// starts loading one whose current task is LOAD.
func (s *Simulation) placeInQueues(ac *aircraft.Aircraft) {
	switch ac.TaskList.CurrentTask().Type {
	case tasks.LAND:
		if !s.LandingQueue.Contains(ac) {
			s.LandingQueue.Add(ac)
			s.AddRadioMessage(ac.Callsign, "Requesting landing.", ac.HasEmergency())
		}
	case tasks.TAKEOFF:
		if !s.TakeoffQueue.Contains(ac) {
			s.TakeoffQueue.Add(ac)
		}
	case tasks.LOAD:
		if !s.Loading.Contains(ac) {
			if err := s.Loading.Set(ac, ac.LoadingTime()); err != nil {
				log.Errorf("LOAD: %v", err)
			}
		}
	}
}

func (s *Simulation) DeclareEmergency(callsign types.AircraftID) error {
	ac, ok := s.FindAircraft(callsign)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoAircraftForCallsign, callsign)
	}
	ac.DeclareEmergency()
	s.AddRadioMessage(callsign, "Mayday, mayday, mayday.", true)
	log.Warnf("EMERGENCY: %s declared an emergency", callsign)
	return nil
}

func (s *Simulation) ClearEmergency(callsign types.AircraftID) error {
	ac, ok := s.FindAircraft(callsign)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoAircraftForCallsign, callsign)
	}
	ac.ClearEmergency()
	s.AddRadioMessage(callsign, "Cancel emergency.", false)
	return nil
}

// SetTerminalEmergency declares or clears an emergency at a terminal. A
// terminal in emergency accepts no landing aircraft.
func (s *Simulation) SetTerminalEmergency(number int, emergency bool) error {
	t, ok := s.FindTerminal(number)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoTerminalForNumber, number)
	}
	if emergency {
		t.DeclareEmergency()
		log.Warnf("EMERGENCY: terminal %d closed", number)
	} else {
		t.ClearEmergency()
		log.Infof("terminal %d reopened", number)
	}
	return nil
}

func (s *Simulation) String() string {
	return fmt.Sprintf("ControlTower: %d terminals, %d total aircraft (%d LAND, %d TAKEOFF, %d LOAD)",
		len(s.Terminals), len(s.Aircraft), s.LandingQueue.Len(), s.TakeoffQueue.Len(), s.Loading.Len())
}
