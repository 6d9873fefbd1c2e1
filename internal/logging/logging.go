package logging

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var once sync.Once

var singleton *log.Logger

func getLogger() *log.Logger {
	once.Do(func() {
		singleton = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          "tavern",
		})
		singleton.SetLevel(log.InfoLevel)
	})
	return singleton
}

// SetDebug lowers the log level to debug output.
func SetDebug() {
	getLogger().SetLevel(log.DebugLevel)
}

func Debugf(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func Infof(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func Warnf(msg string, args ...interface{}) {
	getLogger().Warnf(msg, args...)
}

func Errorf(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}

func Fatalf(msg string, args ...interface{}) {
	getLogger().Fatalf(msg, args...)
}
