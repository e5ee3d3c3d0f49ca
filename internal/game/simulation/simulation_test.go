package simulation

import (
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tower-simulator/internal/game/aircraft"
	"tower-simulator/internal/game/ground"
	"tower-simulator/internal/game/tasks"
	"tower-simulator/pkg/types"
)

func init() {
	log.SetLevel(log.OFF)
}

func newTower(t *testing.T, kind ground.TerminalKind, gates int) *Simulation {
	t.Helper()
	s := NewSimulation()
	term := ground.NewTerminal(kind, 1)
	for i := 1; i <= gates; i++ {
		require.NoError(t, term.AddGate(ground.NewGate(i)))
	}
	s.AddTerminal(term)
	return s
}

func newAircraft(t *testing.T, callsign string, c *aircraft.Characteristics, tl ...tasks.Task) *aircraft.Aircraft {
	t.Helper()
	list, err := tasks.NewTaskList(tl)
	require.NoError(t, err)
	ac, err := aircraft.NewAircraft(types.AircraftID(callsign), c, list, c.FuelCapacity, 0)
	require.NoError(t, err)
	return ac
}

func TestFullCycle(t *testing.T) {
	s := newTower(t, ground.AIRPLANE_TERMINAL, 1)
	ac := newAircraft(t, "QFA481", aircraft.AIRBUS_A320,
		tasks.NewTask(tasks.AWAY), tasks.NewTask(tasks.LAND), tasks.NewLoadTask(100), tasks.NewTask(tasks.TAKEOFF))
	require.NoError(t, s.AddAircraft(ac))
	gate := s.Terminals[0].Gates()[0]

	s.Tick() // burns fuel on the way in and requests landing
	assert.Equal(t, tasks.LAND, ac.TaskList.CurrentTask().Type)
	assert.InDelta(t, 24480, ac.FuelAmount, 1e-6)
	assert.True(t, s.LandingQueue.Contains(ac))

	s.Tick() // odd tick: runway used for departures only
	assert.True(t, s.LandingQueue.Contains(ac))
	assert.False(t, gate.IsOccupied())

	s.Tick() // lands and starts loading
	assert.False(t, s.LandingQueue.Contains(ac))
	assert.Same(t, ac, gate.Aircraft)
	assert.Equal(t, tasks.LOAD, ac.TaskList.CurrentTask().Type)
	ticks, ok := s.Loading.Get(ac)
	require.True(t, ok)
	assert.Equal(t, 2, ticks)
	assert.Equal(t, 1, s.Landings)

	s.Tick()
	assert.Equal(t, aircraft.AIRBUS_A320.FuelCapacity, ac.FuelAmount)
	assert.True(t, s.Loading.Contains(ac))

	s.Tick() // loading done, queued for departure
	assert.False(t, s.Loading.Contains(ac))
	assert.Equal(t, 150, ac.Cargo)
	assert.Equal(t, tasks.TAKEOFF, ac.TaskList.CurrentTask().Type)
	assert.True(t, s.TakeoffQueue.Contains(ac))

	s.Tick() // departs and frees the gate
	assert.False(t, s.TakeoffQueue.Contains(ac))
	assert.False(t, gate.IsOccupied())
	assert.Equal(t, tasks.AWAY, ac.TaskList.CurrentTask().Type)
	assert.Equal(t, 1, s.Takeoffs)
	assert.EqualValues(t, 6, s.Ticks)

	require.NotEmpty(t, s.RadioLog)
	assert.Equal(t, "Cleared for takeoff.", s.RadioLog[len(s.RadioLog)-1].Message)
}

func TestLandingNeedsSuitableGate(t *testing.T) {
	s := newTower(t, ground.AIRPLANE_TERMINAL, 1)
	heli := newAircraft(t, "VH-BFK", aircraft.ROBINSON_R44,
		tasks.NewTask(tasks.LAND), tasks.NewTask(tasks.WAIT), tasks.NewLoadTask(50), tasks.NewTask(tasks.TAKEOFF), tasks.NewTask(tasks.AWAY))
	require.NoError(t, s.AddAircraft(heli))

	for i := 0; i < 4; i++ {
		s.Tick()
	}
	assert.True(t, s.LandingQueue.Contains(heli), "no helicopter terminal, so it keeps holding")
	assert.Equal(t, 0, s.Landings)
}

func TestClosedTerminalRefusesLandings(t *testing.T) {
	s := newTower(t, ground.AIRPLANE_TERMINAL, 2)
	ac := newAircraft(t, "UTD302", aircraft.BOEING_787,
		tasks.NewTask(tasks.LAND), tasks.NewLoadTask(100), tasks.NewTask(tasks.TAKEOFF), tasks.NewTask(tasks.AWAY))
	require.NoError(t, s.AddAircraft(ac))
	require.NoError(t, s.SetTerminalEmergency(1, true))

	s.Tick()
	s.Tick()
	s.Tick()
	assert.True(t, s.LandingQueue.Contains(ac))

	require.NoError(t, s.SetTerminalEmergency(1, false))
	s.Tick()
	s.Tick()
	assert.False(t, s.LandingQueue.Contains(ac))
	assert.ErrorIs(t, s.SetTerminalEmergency(9, true), ErrNoTerminalForNumber)
}

func TestOperatorEmergencies(t *testing.T) {
	s := newTower(t, ground.AIRPLANE_TERMINAL, 1)
	ac := newAircraft(t, "QFA1", aircraft.AIRBUS_A320, tasks.NewTask(tasks.AWAY))
	require.NoError(t, s.AddAircraft(ac))
	assert.ErrorIs(t, s.AddAircraft(ac), ErrDuplicateCallsign)

	require.NoError(t, s.DeclareEmergency("QFA1"))
	assert.True(t, ac.HasEmergency())
	require.NoError(t, s.ClearEmergency("QFA1"))
	assert.False(t, ac.HasEmergency())

	assert.ErrorIs(t, s.DeclareEmergency("NOPE"), ErrNoAircraftForCallsign)
	assert.ErrorIs(t, s.ClearEmergency("NOPE"), ErrNoAircraftForCallsign)

	last := s.RadioLog[len(s.RadioLog)-1]
	assert.Equal(t, "[0000] QFA1: Cancel emergency.", last.String())
}

func TestRadioLogIsBounded(t *testing.T) {
	s := NewSimulation()
	for i := 0; i < 60; i++ {
		s.AddRadioMessage("X", "ping", false)
	}
	assert.Len(t, s.RadioLog, 50)
}
