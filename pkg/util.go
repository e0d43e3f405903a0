package pkg

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger returns a timestamped logger writing to w at the named level.
// An empty level means info.
func NewLogger(w io.Writer, prefix, level string) (*log.Logger, error) {
	if level == "" {
		level = "info"
	}

	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}

	logger := log.New(w)
	logger.SetPrefix(prefix)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)
	logger.SetLevel(lvl)

	return logger, nil
}

// InitLog appends to the file at dest. The terminal belongs to the UI, so
// nothing is ever logged to stdout or stderr. The caller closes the file.
func InitLog(dest, prefix, level string) (*log.Logger, io.Closer, error) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("error opening log file: %w", err)
	}

	logger, err := NewLogger(f, prefix, level)
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	return logger, f, nil
}
