package savefile

import (
	"strconv"
	"strings"

	"tower-simulator/internal/game/aircraft"
	"tower-simulator/internal/game/control"
	"tower-simulator/internal/game/ground"
	"tower-simulator/internal/game/simulation"
)

func EncodeTick(ticks int64) string {
	return strconv.FormatInt(ticks, 10)
}

// EncodeAircraft writes the count line followed by one line per aircraft.
func EncodeAircraft(fleet []*aircraft.Aircraft) string {
	lines := make([]string, 0, len(fleet)+1)
	lines = append(lines, strconv.Itoa(len(fleet)))
	for _, ac := range fleet {
		lines = append(lines, ac.Encode())
	}
	return strings.Join(lines, "\n")
}

func EncodeQueues(takeoff, landing control.AircraftQueue, loading *control.LoadingAircraft) string {
	return strings.Join([]string{
		control.Encode(takeoff),
		control.Encode(landing),
		loading.Encode(),
	}, "\n")
}

func EncodeTerminals(terminals []*ground.Terminal) string {
	lines := make([]string, 0, len(terminals)+1)
	lines = append(lines, strconv.Itoa(len(terminals)))
	for _, t := range terminals {
		lines = append(lines, t.Encode())
	}
	return strings.Join(lines, "\n")
}

// Snapshot holds the encoded contents of the four save files.
type Snapshot struct {
	Tick      string `msgpack:"tick"`
	Aircraft  string `msgpack:"aircraft"`
	Queues    string `msgpack:"queues"`
	Terminals string `msgpack:"terminals"`
}

func Encode(sim *simulation.Simulation) Snapshot {
	return Snapshot{
		Tick:      EncodeTick(sim.Ticks),
		Aircraft:  EncodeAircraft(sim.Aircraft),
		Queues:    EncodeQueues(sim.TakeoffQueue, sim.LandingQueue, sim.Loading),
		Terminals: EncodeTerminals(sim.Terminals),
	}
}

func Decode(s Snapshot) (*simulation.Simulation, error) {
	return CreateSimulation(
		strings.NewReader(s.Tick),
		strings.NewReader(s.Aircraft),
		strings.NewReader(s.Queues),
		strings.NewReader(s.Terminals),
	)
}
