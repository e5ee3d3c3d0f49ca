// Package command parses and runs the operator commands typed into the
// tower client.
package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tower-simulator/internal/game/simulation"
	"tower-simulator/pkg/types"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
	ErrNoSelection    = errors.New("no aircraft selected")
)

// Action is something the client has to do after a command ran.
type Action int

const (
	NONE Action = iota
	SAVE
	PAUSE
	QUIT
)

type Result struct {
	Action  Action
	Arg     string
	Message string
}

const Help = "E [CS] emergency | C [CS] clear | CLOSE N | OPEN N | T [N] tick | P pause | SAVE [DIR] | Q quit"

// Execute runs one command line against the tower. Commands that name an
// aircraft fall back to selected when the callsign is left out.
func Execute(sim *simulation.Simulation, selected types.AircraftID, line string) (Result, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Result{}, fmt.Errorf("%w: empty command", ErrUsage)
	}
	args := parts[1:]

	switch strings.ToUpper(parts[0]) {
	case "E", "EMERGENCY":
		cs, err := callsign(sim, args, selected)
		if err != nil {
			return Result{}, err
		}
		if err := sim.DeclareEmergency(cs); err != nil {
			return Result{}, err
		}
		return Result{Message: fmt.Sprintf("%s declared an emergency", cs)}, nil

	case "C", "CLEAR":
		cs, err := callsign(sim, args, selected)
		if err != nil {
			return Result{}, err
		}
		if err := sim.ClearEmergency(cs); err != nil {
			return Result{}, err
		}
		return Result{Message: fmt.Sprintf("%s emergency cleared", cs)}, nil

	case "CLOSE", "OPEN":
		if len(args) != 1 {
			return Result{}, fmt.Errorf("%w: %s <terminal>", ErrUsage, strings.ToUpper(parts[0]))
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return Result{}, fmt.Errorf("%w: invalid terminal number %q", ErrUsage, args[0])
		}
		closing := strings.EqualFold(parts[0], "CLOSE")
		if err := sim.SetTerminalEmergency(n, closing); err != nil {
			return Result{}, err
		}
		if closing {
			return Result{Message: fmt.Sprintf("terminal %d closed", n)}, nil
		}
		return Result{Message: fmt.Sprintf("terminal %d reopened", n)}, nil

	case "T", "TICK":
		n := 1
		if len(args) > 0 {
			var err error
			if n, err = strconv.Atoi(args[0]); err != nil || n < 1 {
				return Result{}, fmt.Errorf("%w: TICK [count >= 1]", ErrUsage)
			}
		}
		for range n {
			sim.Tick()
		}
		return Result{Message: fmt.Sprintf("advanced %d ticks to %d", n, sim.Ticks)}, nil

	case "P", "PAUSE":
		return Result{Action: PAUSE}, nil

	case "SAVE":
		if len(args) > 1 {
			return Result{}, fmt.Errorf("%w: SAVE [dir]", ErrUsage)
		}
		r := Result{Action: SAVE}
		if len(args) == 1 {
			r.Arg = args[0]
		}
		return r, nil

	case "Q", "QUIT":
		return Result{Action: QUIT}, nil

	case "H", "HELP", "?":
		return Result{Message: Help}, nil
	}
	return Result{}, fmt.Errorf("%w: %s", ErrUnknownCommand, parts[0])
}

func callsign(sim *simulation.Simulation, args []string, selected types.AircraftID) (types.AircraftID, error) {
	switch len(args) {
	case 0:
		if selected == "" {
			return "", ErrNoSelection
		}
		return selected, nil
	case 1:
		return resolve(sim, types.ParseAircraftID(args[0])), nil
	}
	return "", fmt.Errorf("%w: too many arguments", ErrUsage)
}

// resolve lets the operator type a callsign in any case. An exact match wins;
// otherwise the single aircraft equal to id ignoring case is used. Anything
// else is returned as typed and fails the lookup downstream.
func resolve(sim *simulation.Simulation, id types.AircraftID) types.AircraftID {
	if _, ok := sim.FindAircraft(id); ok {
		return id
	}
	var match types.AircraftID
	for _, ac := range sim.Aircraft {
		if strings.EqualFold(string(ac.Callsign), string(id)) {
			if match != "" {
				return id
			}
			match = ac.Callsign
		}
	}
	if match == "" {
		return id
	}
	return match
}
