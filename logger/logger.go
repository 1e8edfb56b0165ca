package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the application-wide logger. Init must run before it is used.
var Log = logrus.New()

// Init configures Log with a JSON formatter writing to stdout. level falls back
// to info when empty or unparsable.
func Init(level ...string) {
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	lvl := logrus.InfoLevel
	if len(level) > 0 && level[0] != "" {
		if parsed, err := logrus.ParseLevel(level[0]); err == nil {
			lvl = parsed
		}
	}
	Log.SetLevel(lvl)
}
