package logger

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger. Production emits JSON so log
// shippers can index fields; everything else gets the colored text formatter.
func Setup(level, env string) {
	log.SetOutput(os.Stdout)

	if strings.EqualFold(env, "production") {
		log.SetFormatter(&log.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	parsed, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown log level %q, falling back to info", level)
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}

// WithComponent returns an entry tagged with the component name.
func WithComponent(name string) *log.Entry {
	return log.WithField("component", name)
}
