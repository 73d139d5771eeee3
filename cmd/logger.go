package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
)

// initLogger configures the standard logger, it writes on stderr so that
// stdout only holds the command output.
func initLogger(levelStr string) {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.WarnLevel
	}
	logrus.SetLevel(level)
}
