package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// New creates a file-backed logger. The terminal belongs to the UI, so
// nothing may ever be written to stdout or stderr; when path is empty
// or the file cannot be opened, output is discarded.
func New(path string) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if path == "" {
		log.SetOutput(io.Discard)
		return log
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return log
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return log
	}

	log.SetOutput(f)
	return log
}

// DefaultLogPath returns ~/.config/avicontrol/avicontrol.log.
func DefaultLogPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "avicontrol.log")
	}
	return filepath.Join(home, ".config", "avicontrol", "avicontrol.log")
}
