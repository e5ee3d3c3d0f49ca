package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]log.Lvl{
		"debug": log.DEBUG,
		"INFO":  log.INFO,
		"Warn":  log.WARN,
		"error": log.ERROR,
		"off":   log.OFF,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestSetupWritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "tower.log")
	closer, err := Setup("warn", file)
	require.NoError(t, err)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.OFF)
	})

	log.Infof("not written")
	log.Warnf("terminal %d closed", 3)
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), "terminal 3 closed")
	assert.NotContains(t, string(b), "not written")
	assert.Equal(t, log.WARN, log.Level())
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	_, err := Setup("loud", "")
	assert.Error(t, err)
}
