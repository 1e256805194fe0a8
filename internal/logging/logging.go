package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging() *logrus.Logger {
	formatter := &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	}

	logger := logrus.Logger{
		Formatter: formatter,
		Hooks:     make(logrus.LevelHooks),
		Out:       os.Stdout,
		Level:     logrus.InfoLevel,
	}

	logrus.SetFormatter(formatter)
	logrus.SetOutput(os.Stdout)

	return &logger
}
