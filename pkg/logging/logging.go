// Package logging configures the application logger. The terminal belongs
// to the UI, so logs only ever go to a file.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

var osOpenFile = os.OpenFile

// New returns a logger appending to logFile, plus a closer for the file.
// An empty logFile disables logging entirely.
func New(logFile string) (zerolog.Logger, io.Closer, error) {
	if logFile == "" {
		return zerolog.Nop(), nopCloser{}, nil
	}
	f, err := osOpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
