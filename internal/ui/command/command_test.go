package command

import (
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tower-simulator/internal/game/aircraft"
	"tower-simulator/internal/game/ground"
	"tower-simulator/internal/game/simulation"
	"tower-simulator/internal/game/tasks"
	"tower-simulator/pkg/types"
)

func init() {
	log.SetLevel(log.OFF)
}

func newTower(t *testing.T) (*simulation.Simulation, *aircraft.Aircraft) {
	t.Helper()
	sim := simulation.NewSimulation()
	term := ground.NewTerminal(ground.AIRPLANE_TERMINAL, 1)
	require.NoError(t, term.AddGate(ground.NewGate(1)))
	sim.AddTerminal(term)

	tl := tasks.MustTaskList(tasks.NewTask(tasks.AWAY), tasks.NewTask(tasks.LAND),
		tasks.NewLoadTask(50), tasks.NewTask(tasks.TAKEOFF))
	ac, err := aircraft.NewAircraft("QFA481", aircraft.AIRBUS_A320, tl, aircraft.AIRBUS_A320.FuelCapacity, 0)
	require.NoError(t, err)
	require.NoError(t, sim.AddAircraft(ac))
	return sim, ac
}

func TestEmergencyCommands(t *testing.T) {
	sim, ac := newTower(t)

	_, err := Execute(sim, "", "e qfa481")
	require.NoError(t, err)
	assert.True(t, ac.HasEmergency())

	_, err = Execute(sim, "QFA481", "CLEAR")
	require.NoError(t, err)
	assert.False(t, ac.HasEmergency())

	_, err = Execute(sim, "", "EMERGENCY")
	assert.ErrorIs(t, err, ErrNoSelection)

	_, err = Execute(sim, "", "E NOPE")
	assert.ErrorIs(t, err, simulation.ErrNoAircraftForCallsign)

	_, err = Execute(sim, "", "E A B")
	assert.ErrorIs(t, err, ErrUsage)
}

func TestMixedCaseCallsigns(t *testing.T) {
	sim, _ := newTower(t)
	newAircraft := func(cs types.AircraftID) *aircraft.Aircraft {
		tl := tasks.MustTaskList(tasks.NewTask(tasks.AWAY), tasks.NewTask(tasks.LAND),
			tasks.NewTask(tasks.WAIT), tasks.NewLoadTask(10), tasks.NewTask(tasks.TAKEOFF))
		ac, err := aircraft.NewAircraft(cs, aircraft.ROBINSON_R44, tl, aircraft.ROBINSON_R44.FuelCapacity, 0)
		require.NoError(t, err)
		require.NoError(t, sim.AddAircraft(ac))
		return ac
	}
	bfk := newAircraft("VH-bfk")

	_, err := Execute(sim, "", "E VH-bfk")
	require.NoError(t, err)
	assert.True(t, bfk.HasEmergency(), "exact callsign is reachable")

	res, err := Execute(sim, "", "C vh-BFK")
	require.NoError(t, err)
	assert.False(t, bfk.HasEmergency())
	assert.Equal(t, "VH-bfk emergency cleared", res.Message)

	upper := newAircraft("VH-BFK")
	_, err = Execute(sim, "", "E VH-BFK")
	require.NoError(t, err)
	assert.True(t, upper.HasEmergency())
	assert.False(t, bfk.HasEmergency(), "exact match wins over a case-insensitive one")

	_, err = Execute(sim, "", "E vh-bfK")
	assert.ErrorIs(t, err, simulation.ErrNoAircraftForCallsign, "ambiguous callsign is not guessed")
}

func TestTerminalCommands(t *testing.T) {
	sim, _ := newTower(t)
	term, _ := sim.FindTerminal(1)

	r, err := Execute(sim, "", "close 1")
	require.NoError(t, err)
	assert.True(t, term.HasEmergency())
	assert.Equal(t, "terminal 1 closed", r.Message)

	_, err = Execute(sim, "", "OPEN 1")
	require.NoError(t, err)
	assert.False(t, term.HasEmergency())

	_, err = Execute(sim, "", "OPEN one")
	assert.ErrorIs(t, err, ErrUsage)
	_, err = Execute(sim, "", "CLOSE 4")
	assert.ErrorIs(t, err, simulation.ErrNoTerminalForNumber)
}

func TestTickCommand(t *testing.T) {
	sim, ac := newTower(t)

	_, err := Execute(sim, "", "T")
	require.NoError(t, err)
	assert.EqualValues(t, 1, sim.Ticks)
	assert.True(t, sim.LandingQueue.Contains(ac))

	r, err := Execute(sim, "", "tick 3")
	require.NoError(t, err)
	assert.EqualValues(t, 4, sim.Ticks)
	assert.Equal(t, "advanced 3 ticks to 4", r.Message)

	for _, bad := range []string{"T 0", "T x"} {
		_, err := Execute(sim, "", bad)
		assert.ErrorIs(t, err, ErrUsage, bad)
	}
}

func TestClientActions(t *testing.T) {
	sim, _ := newTower(t)
	for line, want := range map[string]Result{
		"p":              {Action: PAUSE},
		"SAVE":           {Action: SAVE},
		"save /tmp/ybbn": {Action: SAVE, Arg: "/tmp/ybbn"},
		"Q":              {Action: QUIT},
		"?":              {Message: Help},
	} {
		got, err := Execute(sim, types.AircraftID(""), line)
		require.NoError(t, err, line)
		assert.Equal(t, want, got, line)
	}

	_, err := Execute(sim, "", "   ")
	assert.ErrorIs(t, err, ErrUsage)
	_, err = Execute(sim, "", "HEADING 270")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}
