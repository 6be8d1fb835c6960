package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level selects the logger verbosity threshold.
type Level logging.Level

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{level:.4s} [%{module}]%{color:reset} %{message}`,
)

var backend logging.LeveledBackend

// Logger is the formatted, leveled logging surface used across the
// renderer. go-logging's named loggers satisfy it directly.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Noticef(format string, v ...interface{})
	Warningf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns a named logger sharing the package backend.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink replaces the output writer. Log output goes to stderr by
// default so rendered data and scene listings own stdout.
func SetSink(sink io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(loggingLevel(Notice), "")
	logging.SetBackend(backend)
}

// SetLevel sets the verbosity threshold for all modules.
func SetLevel(level Level) {
	backend.SetLevel(loggingLevel(level), "")
}

func loggingLevel(level Level) logging.Level {
	switch level {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Notice:
		return logging.NOTICE
	case Warning:
		return logging.WARNING
	default:
		return logging.ERROR
	}
}

func init() {
	SetSink(os.Stderr)
}
