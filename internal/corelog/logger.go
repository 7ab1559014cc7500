// Package corelog wraps github.com/charmbracelet/log for the shader build
// pipeline: a package-level singleton for call sites that have no logger at
// hand, and a per-build-run Logger that tags every line with a correlation
// id so a single `build`/`compile`/`packlib` invocation's output can be
// picked out of a noisy CI log.
package corelog

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var once sync.Once
var singleton *log.Logger

func base() *log.Logger {
	once.Do(func() {
		singleton = log.NewWithOptions(os.Stderr, log.Options{
			ReportCaller:    true,
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "vultrashaderc",
		})
		singleton.SetLevel(log.InfoLevel)
	})
	return singleton
}

// Logger tags every line it writes with a build-run id. The id plays no
// role in any hash or on-disk format; it exists purely so a caller
// grepping a shared log stream can isolate one invocation. The driver, the
// library orchestrator and the cache log through the package-level helpers
// below, not through a Logger.
type Logger struct {
	*log.Logger
	RunID string
}

// New creates a per-run logger. verbose raises the level to Debug.
func New(verbose bool) *Logger {
	runID := uuid.NewString()[:8]
	l := base().With("run", runID)
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
	return &Logger{Logger: l, RunID: runID}
}

func SetVerbose(verbose bool) {
	if verbose {
		base().SetLevel(log.DebugLevel)
	} else {
		base().SetLevel(log.InfoLevel)
	}
}

func Debug(msg string, args ...interface{}) { base().Debugf(msg, args...) }
func Info(msg string, args ...interface{})  { base().Infof(msg, args...) }
func Warn(msg string, args ...interface{})  { base().Warnf(msg, args...) }
func Error(msg string, args ...interface{}) { base().Errorf(msg, args...) }
