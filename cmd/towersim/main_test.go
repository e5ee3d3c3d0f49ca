package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tower-simulator/internal/game/savefile"
)

var sample = savefile.Snapshot{
	Tick: "4",
	Aircraft: "2\n" +
		"QFA481:AIRBUS_A320:AWAY,LAND,WAIT,LOAD@60,TAKEOFF:10000.00:false:132\n" +
		"UPS77:BOEING_747_8F:LAND,LOAD@100,TAKEOFF,AWAY:30000.00:true:0",
	Queues: "TakeoffQueue:0\n" +
		"LandingQueue:1\n" +
		"UPS77\n" +
		"LoadingAircraft:0",
	Terminals: "1\n" +
		"AirplaneTerminal:1:false:2\n" +
		"1:empty\n" +
		"2:empty",
}

func writeSave(t *testing.T, s savefile.Snapshot) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, savefile.WriteSnapshot(dir, savefile.DefaultFileNames, s))
	return dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--log-level", "off"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestValidate(t *testing.T) {
	dir := writeSave(t, sample)
	out, err := execute(t, "validate", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "ok, tick 4, 2 aircraft, 1 terminals, 2 gates")

	bad := sample
	bad.Queues = "TakeoffQueue:0\nLandingQueue:2\nUPS77\nLoadingAircraft:0"
	_, err = execute(t, "validate", writeSave(t, bad))
	assert.ErrorIs(t, err, savefile.ErrMalformedSave)

	_, err = execute(t, "validate")
	assert.Error(t, err)
}

func TestShow(t *testing.T) {
	out, err := execute(t, "show", writeSave(t, sample))
	require.NoError(t, err)
	for _, want := range []string{
		"Tick 4",
		"AirplaneTerminal 1, 2 gates",
		"Gate 1 [empty]",
		"1. UPS77, fuel 13%",
		"QFA481",
	} {
		assert.Contains(t, out, want)
	}
}

func TestRunSavesToOut(t *testing.T) {
	dir := writeSave(t, sample)
	out := filepath.Join(t.TempDir(), "after")

	stdout, err := execute(t, "run", dir, "--ticks", "3", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "tick 7")

	b, err := os.ReadFile(filepath.Join(out, "tick.txt"))
	require.NoError(t, err)
	assert.Equal(t, "7", string(b))

	b, err = os.ReadFile(filepath.Join(dir, "tick.txt"))
	require.NoError(t, err)
	assert.Equal(t, "4", string(b), "input left alone when --out is given")

	_, err = execute(t, "validate", out)
	assert.NoError(t, err)
}

func TestRunInPlace(t *testing.T) {
	dir := writeSave(t, sample)
	_, err := execute(t, "run", dir, "--ticks", "2")
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(dir, "tick.txt"))
	require.NoError(t, err)
	assert.Equal(t, "6", string(b))

	_, err = execute(t, "run", dir, "--ticks", "-1")
	assert.Error(t, err)
}

func TestPackUnpack(t *testing.T) {
	dir := writeSave(t, sample)
	archive := filepath.Join(t.TempDir(), "ybbn"+savefile.ArchiveExtension)
	dst := filepath.Join(t.TempDir(), "restored")

	_, err := execute(t, "pack", dir, archive)
	require.NoError(t, err)
	_, err = execute(t, "unpack", archive, dst)
	require.NoError(t, err)

	got, err := savefile.ReadSnapshot(dst, savefile.DefaultFileNames)
	require.NoError(t, err)
	assert.Equal(t, sample, got)
}

func TestConfigFileNames(t *testing.T) {
	dir := t.TempDir()
	names := savefile.FileNames{Tick: "t", Aircraft: "a", Queues: "q", Terminals: "g"}
	require.NoError(t, savefile.WriteSnapshot(dir, names, sample))

	conf := filepath.Join(t.TempDir(), "towersim.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("files: {tick: t, aircraft: a, queues: q, terminals: g}\n"), 0o644))

	_, err := execute(t, "--config", conf, "validate", dir)
	require.NoError(t, err)

	_, err = execute(t, "validate", dir)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
