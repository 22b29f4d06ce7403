package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	return l
}()

// Logger returns the logger shared by the analysis packages.
func Logger() *logrus.Logger {
	return logger
}

// configureLogger adjusts the logging level according to -verbose and -ai-logging.
func configureLogger() {
	switch {
	case opts.logai:
		logger.SetLevel(logrus.TraceLevel)
	case opts.verbose:
		logger.SetLevel(logrus.DebugLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
}
