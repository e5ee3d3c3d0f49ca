package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const header = "${time_rfc3339} ${level} ${short_file}:${line}"

var levels = map[string]log.Lvl{
	"debug": log.DEBUG,
	"info":  log.INFO,
	"warn":  log.WARN,
	"error": log.ERROR,
	"off":   log.OFF,
}

// ParseLevel maps a level name to its gommon level. Names are
// case-insensitive.
func ParseLevel(name string) (log.Lvl, error) {
	lvl, ok := levels[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("unknown log level %q (want debug, info, warn, error or off)", name)
	}
	return lvl, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup configures the global logger. When file is set, output also goes to
// a rotating log file. The returned closer releases the file.
func Setup(level, file string) (io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)
	log.SetHeader(header)

	if file == "" {
		log.SetOutput(os.Stderr)
		return nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, err
	}
	w := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    32, // MB
		MaxBackups: 1,
	}
	if lvl == log.DEBUG {
		w.MaxSize = 512
	}
	log.SetOutput(io.MultiWriter(os.Stderr, w))
	return w, nil
}
