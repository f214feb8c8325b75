package workspace

import (
	"fmt"
	"strings"

	"github.com/yndnr/bpls-go/internal/telemetry/logger"
)

// badgerLogger routes Badger's printf-style logging into the application
// logger. Badger info lines are logged at debug level.
type badgerLogger struct {
	log logger.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error(msg(format, args), "component", "badger")
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn(msg(format, args), "component", "badger")
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug(msg(format, args), "component", "badger")
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug(msg(format, args), "component", "badger")
}

func msg(format string, args []interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}
