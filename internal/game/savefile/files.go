package savefile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/log"

	"tower-simulator/internal/game/simulation"
)

// FileNames are the names of the four save files inside a save directory.
type FileNames struct {
	Tick      string `yaml:"tick"`
	Aircraft  string `yaml:"aircraft"`
	Queues    string `yaml:"queues"`
	Terminals string `yaml:"terminals"`
}

var DefaultFileNames = FileNames{
	Tick:      "tick.txt",
	Aircraft:  "aircraft.txt",
	Queues:    "queues.txt",
	Terminals: "terminalsWithGates.txt",
}

// Save writes the tower's state into dir, creating it if needed.
func Save(dir string, names FileNames, sim *simulation.Simulation) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return WriteSnapshot(dir, names, Encode(sim))
}

func WriteSnapshot(dir string, names FileNames, s Snapshot) error {
	files := []struct {
		name, contents string
	}{
		{names.Tick, s.Tick},
		{names.Aircraft, s.Aircraft},
		{names.Queues, s.Queues},
		{names.Terminals, s.Terminals},
	}
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.contents), 0o644); err != nil {
			return err
		}
	}
	log.Infof("saved to %s", dir)
	return nil
}

// Load builds a tower from the save files in dir.
func Load(dir string, names FileNames) (*simulation.Simulation, error) {
	s, err := ReadSnapshot(dir, names)
	if err != nil {
		return nil, err
	}
	sim, err := Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}
	log.Infof("loaded %s: %s", dir, sim)
	return sim, nil
}

// ReadSnapshot reads the four save files without decoding them.
func ReadSnapshot(dir string, names FileNames) (Snapshot, error) {
	var s Snapshot
	for _, f := range []struct {
		name string
		dst  *string
	}{
		{names.Tick, &s.Tick},
		{names.Aircraft, &s.Aircraft},
		{names.Queues, &s.Queues},
		{names.Terminals, &s.Terminals},
	} {
		b, err := os.ReadFile(filepath.Join(dir, f.name))
		if err != nil {
			return Snapshot{}, err
		}
		*f.dst = string(b)
	}
	return s, nil
}
