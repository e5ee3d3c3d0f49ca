package savefile

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"tower-simulator/internal/game/aircraft"
	"tower-simulator/internal/game/control"
	"tower-simulator/internal/game/ground"
	"tower-simulator/internal/game/simulation"
	"tower-simulator/internal/game/tasks"
	"tower-simulator/pkg/types"
)

// LoadTick reads the tick file: a single non-negative integer.
func LoadTick(r io.Reader) (int64, error) {
	lr := NewLineReader(r)
	line, err := lr.Next()
	if err != nil {
		return 0, err
	}
	n, ok := parseInt(line)
	if !ok || n < 0 {
		return 0, lr.malformed("invalid tick %q", line)
	}
	if err := lr.ExpectEOF(); err != nil {
		return 0, err
	}
	return int64(n), nil
}

// LoadAircraft reads the aircraft file: a count line followed by exactly
// that many aircraft lines.
func LoadAircraft(r io.Reader) ([]*aircraft.Aircraft, error) {
	lr := NewLineReader(r)
	n, err := lr.parseCount("aircraft")
	if err != nil {
		return nil, err
	}

	fleet := make([]*aircraft.Aircraft, 0, n)
	seen := make(map[types.AircraftID]bool, n)
	for range n {
		line, err := lr.Next()
		if err != nil {
			return nil, err
		}
		ac, err := ReadAircraft(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lr.Line(), err)
		}
		if seen[ac.Callsign] {
			return nil, lr.malformed("duplicate callsign %s", ac.Callsign)
		}
		seen[ac.Callsign] = true
		fleet = append(fleet, ac)
	}
	if err := lr.ExpectEOF(); err != nil {
		return nil, err
	}
	return fleet, nil
}

// ReadAircraft parses one aircraft line:
//
//	callsign:model:tasks:fuel:emergency:cargo
func ReadAircraft(line string) (*aircraft.Aircraft, error) {
	f, ok := splitFields(line, ":", 6)
	if !ok {
		return nil, malformed("aircraft %q: expected 6 fields, got %d", line, len(f))
	}

	callsign := types.AircraftID(f[0])
	if !callsign.Valid() {
		return nil, malformed("invalid callsign %q", f[0])
	}
	c, ok := aircraft.LookupCharacteristics(f[1])
	if !ok {
		return nil, malformed("%s: unknown aircraft model %q", callsign, f[1])
	}
	tl, err := ReadTaskList(f[2])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", callsign, err)
	}
	fuel, ok := parseFloat(f[3])
	if !ok {
		return nil, malformed("%s: invalid fuel amount %q", callsign, f[3])
	}
	emergency, ok := parseBool(f[4])
	if !ok {
		return nil, malformed("%s: invalid emergency flag %q", callsign, f[4])
	}
	cargo, ok := parseInt(f[5])
	if !ok {
		return nil, malformed("%s: invalid cargo amount %q", callsign, f[5])
	}

	ac, err := aircraft.NewAircraft(callsign, c, tl, fuel, cargo)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSave, err)
	}
	ac.Emergency = emergency
	return ac, nil
}

// ReadTaskList parses a comma-separated task list such as
// "WAIT,LOAD@60,TAKEOFF,AWAY,LAND". A bare LOAD loads 0%.
func ReadTaskList(s string) (*tasks.TaskList, error) {
	parts := strings.Split(s, ",")
	list := make([]tasks.Task, 0, len(parts))
	for _, part := range parts {
		task, err := readTask(part)
		if err != nil {
			return nil, err
		}
		list = append(list, task)
	}

	tl, err := tasks.NewTaskList(list)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSave, err)
	}
	return tl, nil
}

func readTask(s string) (tasks.Task, error) {
	name, percent, hasPercent := strings.Cut(s, "@")
	t, ok := tasks.ParseTaskType(name)
	if !ok {
		return tasks.Task{}, malformed("unknown task %q", s)
	}
	if !hasPercent {
		return tasks.NewTask(t), nil
	}
	if t != tasks.LOAD {
		return tasks.Task{}, malformed("task %q: only LOAD takes a percentage", s)
	}
	p, ok := parseInt(percent)
	if !ok || p < 0 {
		return tasks.Task{}, malformed("task %q: invalid load percentage", s)
	}
	return tasks.NewLoadTask(p), nil
}

type fleetIndex map[types.AircraftID]*aircraft.Aircraft

func indexFleet(fleet []*aircraft.Aircraft) fleetIndex {
	idx := make(fleetIndex, len(fleet))
	for _, ac := range fleet {
		if _, ok := idx[ac.Callsign]; !ok {
			idx[ac.Callsign] = ac
		}
	}
	return idx
}

func (idx fleetIndex) lookup(cs string) (*aircraft.Aircraft, bool) {
	ac, ok := idx[types.AircraftID(cs)]
	return ac, ok
}

// LoadQueues reads the queues file: the takeoff queue, the landing queue and
// the loading map, in that order. Nothing is added to the given queues unless
// the whole file is valid.
func LoadQueues(r io.Reader, fleet []*aircraft.Aircraft, takeoff *control.TakeoffQueue,
	landing *control.LandingQueue, loading *control.LoadingAircraft) error {
	lr := NewLineReader(r)

	to := control.NewTakeoffQueue()
	if err := ReadQueue(lr, fleet, to); err != nil {
		return err
	}
	ld := control.NewLandingQueue()
	if err := ReadQueue(lr, fleet, ld); err != nil {
		return err
	}
	lm := control.NewLoadingAircraft()
	if err := ReadLoadingAircraft(lr, fleet, lm); err != nil {
		return err
	}
	if err := lr.ExpectEOF(); err != nil {
		return err
	}

	for _, ac := range to.InOrder() {
		takeoff.Add(ac)
	}
	for _, ac := range ld.InOrder() {
		landing.Add(ac)
	}
	for _, ac := range lm.Aircraft() {
		ticks, _ := lm.Get(ac)
		if err := loading.Set(ac, ticks); err != nil {
			return err
		}
	}
	return nil
}

// ReadQueue reads one queue block. The header must name q exactly, and every
// callsign must belong to an aircraft in fleet. On error q is left untouched.
// Nothing past the block is read, so callers check what follows themselves.
func ReadQueue(lr *LineReader, fleet []*aircraft.Aircraft, q control.AircraftQueue) error {
	n, err := lr.parseHeader(q.Name())
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	line, err := lr.Next()
	if err != nil {
		return err
	}
	cs := strings.Split(line, ",")
	if len(cs) != n {
		return lr.malformed("%s declares %d aircraft, found %d", q.Name(), n, len(cs))
	}

	idx := indexFleet(fleet)
	queued := make([]*aircraft.Aircraft, 0, n)
	for _, c := range cs {
		ac, ok := idx.lookup(c)
		if !ok {
			return lr.malformed("%s: no aircraft with callsign %q", q.Name(), c)
		}
		if q.Contains(ac) || slices.Contains(queued, ac) {
			return lr.malformed("%s: %s queued twice", q.Name(), c)
		}
		queued = append(queued, ac)
	}
	for _, ac := range queued {
		q.Add(ac)
	}
	return nil
}

// ReadLoadingAircraft reads the loading block: a "LoadingAircraft:n" header
// and, for n > 0, one line of callsign:ticks pairs. Like ReadQueue it stops
// at the end of the block and leaves the end of file check to the caller.
func ReadLoadingAircraft(lr *LineReader, fleet []*aircraft.Aircraft, loading *control.LoadingAircraft) error {
	n, err := lr.parseHeader(control.LoadingAircraftName)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	line, err := lr.Next()
	if err != nil {
		return err
	}
	pairs := strings.Split(line, ",")
	if len(pairs) != n {
		return lr.malformed("%s declares %d aircraft, found %d", control.LoadingAircraftName, n, len(pairs))
	}

	type entry struct {
		ac    *aircraft.Aircraft
		ticks int
	}
	idx := indexFleet(fleet)
	entries := make([]entry, 0, n)
	seen := make(map[*aircraft.Aircraft]bool, n)
	for _, pair := range pairs {
		f, ok := splitFields(pair, ":", 2)
		if !ok {
			return lr.malformed("invalid loading entry %q", pair)
		}
		ac, ok := idx.lookup(f[0])
		if !ok {
			return lr.malformed("%s: no aircraft with callsign %q", control.LoadingAircraftName, f[0])
		}
		if seen[ac] || loading.Contains(ac) {
			return lr.malformed("%s: %s listed twice", control.LoadingAircraftName, f[0])
		}
		ticks, ok := parseInt(f[1])
		if !ok || ticks < 1 {
			return lr.malformed("%s: invalid ticks remaining %q", f[0], f[1])
		}
		seen[ac] = true
		entries = append(entries, entry{ac, ticks})
	}
	for _, e := range entries {
		if err := loading.Set(e.ac, e.ticks); err != nil {
			return err
		}
	}
	return nil
}

// LoadTerminalsWithGates reads the terminals file: a count line followed by
// that many terminal blocks.
func LoadTerminalsWithGates(r io.Reader, fleet []*aircraft.Aircraft) ([]*ground.Terminal, error) {
	lr := NewLineReader(r)
	n, err := lr.parseCount("terminals")
	if err != nil {
		return nil, err
	}

	terminals := make([]*ground.Terminal, 0, n)
	parked := make(map[*aircraft.Aircraft]bool)
	for range n {
		header, err := lr.Next()
		if err != nil {
			return nil, err
		}
		t, err := ReadTerminal(header, lr, fleet)
		if err != nil {
			return nil, err
		}
		for _, g := range t.Gates() {
			if !g.IsOccupied() {
				continue
			}
			if parked[g.Aircraft] {
				return nil, lr.malformed("%s is parked at more than one gate", g.Aircraft.Callsign)
			}
			parked[g.Aircraft] = true
		}
		terminals = append(terminals, t)
	}
	if err := lr.ExpectEOF(); err != nil {
		return nil, err
	}
	return terminals, nil
}

// ReadTerminal parses a terminal header "Kind:number:emergency:gates" and
// reads its gate lines from lr.
func ReadTerminal(header string, lr *LineReader, fleet []*aircraft.Aircraft) (*ground.Terminal, error) {
	f, ok := splitFields(header, ":", 4)
	if !ok {
		return nil, lr.malformed("terminal %q: expected 4 fields, got %d", header, len(f))
	}
	kind, ok := ground.ParseTerminalKind(f[0])
	if !ok {
		return nil, lr.malformed("unknown terminal kind %q", f[0])
	}
	number, ok := parseInt(f[1])
	if !ok || number < 1 {
		return nil, lr.malformed("invalid terminal number %q", f[1])
	}
	emergency, ok := parseBool(f[2])
	if !ok {
		return nil, lr.malformed("terminal %d: invalid emergency flag %q", number, f[2])
	}
	gates, ok := parseInt(f[3])
	if !ok || gates < 0 || gates > ground.MAX_GATES {
		return nil, lr.malformed("terminal %d: invalid number of gates %q", number, f[3])
	}

	t := ground.NewTerminal(kind, number)
	if emergency {
		t.DeclareEmergency()
	}
	for range gates {
		line, err := lr.Next()
		if err != nil {
			return nil, err
		}
		g, err := ReadGate(line, fleet)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lr.Line(), err)
		}
		if err := t.AddGate(g); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedSave, err)
		}
	}
	return t, nil
}

// ReadGate parses a gate line "number:callsign", where callsign is "empty"
// for a free gate.
func ReadGate(line string, fleet []*aircraft.Aircraft) (*ground.Gate, error) {
	f, ok := splitFields(line, ":", 2)
	if !ok {
		return nil, malformed("gate %q: expected 2 fields, got %d", line, len(f))
	}
	number, ok := parseInt(f[0])
	if !ok || number < 1 {
		return nil, malformed("invalid gate number %q", f[0])
	}

	g := ground.NewGate(number)
	if f[1] == ground.EmptyGate {
		return g, nil
	}
	ac, ok := indexFleet(fleet).lookup(f[1])
	if !ok {
		return nil, malformed("gate %d: no aircraft with callsign %q", number, f[1])
	}
	if err := g.Park(ac); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSave, err)
	}
	return g, nil
}

// CreateSimulation builds a tower from the four save files.
func CreateSimulation(tick, fleet, queues, terminals io.Reader) (*simulation.Simulation, error) {
	ticks, err := LoadTick(tick)
	if err != nil {
		return nil, fmt.Errorf("tick: %w", err)
	}
	list, err := LoadAircraft(fleet)
	if err != nil {
		return nil, fmt.Errorf("aircraft: %w", err)
	}

	sim := simulation.NewSimulation()
	sim.Ticks = ticks
	for _, ac := range list {
		if err := sim.AddAircraft(ac); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedSave, err)
		}
	}
	if err := LoadQueues(queues, list, sim.TakeoffQueue, sim.LandingQueue, sim.Loading); err != nil {
		return nil, fmt.Errorf("queues: %w", err)
	}
	ts, err := LoadTerminalsWithGates(terminals, list)
	if err != nil {
		return nil, fmt.Errorf("terminals: %w", err)
	}
	for _, t := range ts {
		if _, dup := sim.FindTerminal(t.Number); dup {
			return nil, malformed("terminals: duplicate terminal number %d", t.Number)
		}
		sim.AddTerminal(t)
	}
	return sim, nil
}

// IsMalformed reports whether err was caused by invalid save content rather
// than a failure to read it.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedSave)
}
