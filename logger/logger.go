package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/shamanec/GADS-sim-provider/db"
	"github.com/sirupsen/logrus"
	log "github.com/sirupsen/logrus"
	r "gopkg.in/rethinkdb/rethinkdb-go.v6"
)

type CustomLogger struct {
	*log.Logger
}

var logLevelMapping = map[string]logrus.Level{
	"debug": logrus.DebugLevel,
	"info":  logrus.InfoLevel,
	"warn":  logrus.WarnLevel,
	"error": logrus.ErrorLevel,
}

var ProviderLogger *CustomLogger
var logLevel string

func SetupLogging(level, providerFolder string) {
	logLevel = level

	err := os.MkdirAll(fmt.Sprintf("%s/logs", providerFolder), os.ModePerm)
	if err != nil {
		panic(fmt.Sprintf("Could not create `%s/logs` folder - %s", providerFolder, err))
	}

	ProviderLogger, err = CreateCustomLogger(fmt.Sprintf("%s/logs/provider.log", providerFolder))
	if err != nil {
		panic(err)
	}
}

func (l CustomLogger) LogDebug(event_name string, message string) {
	l.WithFields(log.Fields{
		"event": event_name,
	}).Debug(message)
}

func (l CustomLogger) LogInfo(event_name string, message string) {
	l.WithFields(log.Fields{
		"event": event_name,
	}).Info(message)
}

func (l CustomLogger) LogError(event_name string, message string) {
	l.WithFields(log.Fields{
		"event": event_name,
	}).Error(message)
}

func (l CustomLogger) LogWarn(event_name string, message string) {
	l.WithFields(log.Fields{
		"event": event_name,
	}).Warn(message)
}

func (l CustomLogger) LogFatal(event_name string, message string) {
	l.WithFields(log.Fields{
		"event": event_name,
	}).Fatal(message)
}

func (l CustomLogger) LogPanic(event_name string, message string) {
	l.WithFields(log.Fields{
		"event": event_name,
	}).Panic(message)
}

func CreateCustomLogger(logFilePath string) (*CustomLogger, error) {
	// Create a new logger instance
	logger := log.New()

	// Configure the logger
	logger.SetFormatter(&log.JSONFormatter{})
	level, ok := logLevelMapping[logLevel]
	if !ok {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	// Open the log file
	logFile, err := os.OpenFile(logFilePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0755)
	if err != nil {
		return &CustomLogger{}, fmt.Errorf("Could not set log output - %v", err)
	}

	// Set the output to the log file
	logger.SetOutput(logFile)

	logger.AddHook(&RethinkDBHook{
		Session: db.Session(),
		Table:   "provider_logs",
	})

	return &CustomLogger{Logger: logger}, nil
}

type RethinkDBHook struct {
	Session *r.Session
	Table   string
}

type logEntry struct {
	Level     string `json:"level"`
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
	EventName string `json:"event"`
}

func (hook *RethinkDBHook) Fire(entry *log.Entry) error {
	eventName := ""
	if name, ok := entry.Data["event"].(string); ok {
		eventName = name
	}

	document := logEntry{
		Level:     entry.Level.String(),
		Message:   entry.Message,
		Timestamp: time.Now().UnixMilli(),
		EventName: eventName,
	}

	err := r.Table(hook.Table).Insert(document).Exec(hook.Session)
	if err != nil {
		fmt.Println("Failed inserting provider log through hook - " + err.Error())
	}

	return err
}

// Levels returns the log levels at which the hook should fire
func (hook *RethinkDBHook) Levels() []log.Level {
	return log.AllLevels
}
