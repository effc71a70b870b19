package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

// InitLogger sets up the two process loggers: info to stdout, errors to
// stderr. level applies to the info logger; unknown values fall back to
// info.
func InitLogger(level string) {
	InfoLogger = logrus.New()
	ErrorLogger = logrus.New()

	InfoLogger.SetOutput(os.Stdout)
	ErrorLogger.SetOutput(os.Stderr)

	formatter := &logrus.TextFormatter{FullTimestamp: true}
	InfoLogger.SetFormatter(formatter)
	ErrorLogger.SetFormatter(formatter)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	InfoLogger.SetLevel(parsed)
	ErrorLogger.SetLevel(logrus.ErrorLevel)
}
