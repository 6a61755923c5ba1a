// Package log hands out named loggers that share one leveled go-logging
// backend. Output goes to stdout at Notice until SetSink or SetLevel change it.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var backendLevels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

var lineFormat = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{level:.4s} [%{module}]%{color:reset} %{message}`,
)

var (
	backend logging.LeveledBackend
	level   = Notice
)

// Logger is the subset of *logging.Logger the rest of the module uses.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Notice(args ...interface{})
	Noticef(format string, args ...interface{})
	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink redirects every logger to w. The current level carries over.
func SetSink(w io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), lineFormat)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(backendLevels[level], "")
	logging.SetBackend(backend)
}

// SetLevel drops messages below l for every module. Unknown levels are ignored.
func SetLevel(l Level) {
	lvl, ok := backendLevels[l]
	if !ok {
		return
	}
	level = l
	backend.SetLevel(lvl, "")
}

func init() {
	SetSink(os.Stdout)
}
