package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

var (
	Info  *log.Logger
	Warn  *log.Logger
	Error *log.Logger
)

func init() {
	setOutput(io.Discard, false)
}

func setOutput(w io.Writer, colored bool) {
	info, warn, errp := "[INFO] ", "[WARN] ", "[ERROR] "
	if colored {
		info = color.GreenString(info)
		warn = color.YellowString(warn)
		errp = color.RedString(errp)
	}
	flags := log.Ldate | log.Ltime | log.Lshortfile
	Info = log.New(w, info, flags)
	Warn = log.New(w, warn, flags)
	Error = log.New(w, errp, flags)
}

// Init points the loggers at path. The TUI owns stdout, so logs go to a file.
// An empty path keeps logging discarded. The returned closer releases the file.
func Init(path string) (io.Closer, error) {
	if path == "" {
		setOutput(io.Discard, false)
		return io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	setOutput(f, false)
	return f, nil
}

// InitWriter sends log output to w, used by CLI subcommands writing to stderr.
func InitWriter(w io.Writer) {
	setOutput(w, !color.NoColor)
}
