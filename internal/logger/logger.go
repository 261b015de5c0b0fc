// Package logger configures the logrus logger shared by the command-line
// tool and the pattern file loader.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

var base = newLogger(os.Stderr)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&prefixed.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		ForceFormatting: true,
	})
	return l
}

// Init sets the level of every logger returned by GetLogger. An unknown
// level name is an error and leaves the level unchanged.
func Init(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	base.SetLevel(lvl)
	return nil
}

// SetOutput redirects log output, mostly for tests.
func SetOutput(w io.Writer) {
	base.SetOutput(w)
}

// GetLogger returns a logger whose lines are tagged with prefix.
func GetLogger(prefix string) *logrus.Entry {
	return base.WithField("prefix", prefix)
}
