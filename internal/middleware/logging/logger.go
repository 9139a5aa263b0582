package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Enabled    bool   // Включено ли логирование
	Level      string // DEBUG, INFO, WARN, ERROR
	LogsDir    string // Директория для логов
	SavingDays uint   // Сколько дней хранить логи
}

// Logger - логгер сервиса с префиксом компонента поверх logrus.
type Logger struct {
	config *Config
	base   *logrus.Logger
	file   *os.File
	prefix string
}

func NewLogger(cfg *Config, prefix string) *Logger {
	l := &Logger{
		config: cfg,
		prefix: prefix,
		base:   logrus.New(),
	}

	var output io.Writer = os.Stdout
	if !cfg.Enabled {
		output = io.Discard
	} else if cfg.LogsDir != "" {
		if err := os.MkdirAll(cfg.LogsDir, 0755); err == nil {
			logFile := filepath.Join(cfg.LogsDir, time.Now().Format("2006-01-02")+".log")
			if file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
				l.file = file
				output = io.MultiWriter(os.Stdout, file)
			}
		}
	}

	l.base.SetOutput(output)
	l.base.SetLevel(parseLevel(cfg.Level))
	l.base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if cfg.Enabled && cfg.LogsDir != "" && cfg.SavingDays > 0 {
		go l.cleanOldLogs()
	}

	return l
}

// NewFromLogrus оборачивает готовый logrus логгер (используется в тестах и CLI).
func NewFromLogrus(base *logrus.Logger, prefix string) *Logger {
	return &Logger{
		config: &Config{Enabled: true, Level: base.GetLevel().String()},
		base:   base,
		prefix: prefix,
	}
}

func (l *Logger) WithPrefix(prefix string) *Logger {
	newPrefix := l.prefix
	if newPrefix != "" {
		newPrefix += " "
	}
	newPrefix += "[" + prefix + "]"

	return &Logger{
		config: l.config,
		base:   l.base,
		file:   l.file,
		prefix: newPrefix,
	}
}

// Logrus возвращает базовый логгер, например для передачи в stepper.Client.
func (l *Logger) Logrus() *logrus.Logger {
	return l.base
}

func (l *Logger) cleanOldLogs() {
	for range time.Tick(24 * time.Hour) {
		removed, err := removeLogsOlderThan(l.config.LogsDir, time.Now().AddDate(0, 0, int(-l.config.SavingDays)))
		if err != nil {
			l.Error("Failed to clean logs directory", "error", err)
			continue
		}
		if removed > 0 {
			l.Debug("Old log files removed", "count", removed)
		}
	}
}

func removeLogsOlderThan(dir string, cutoff time.Time) (int, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read logs directory: %w", err)
	}

	removed := 0
	for _, file := range files {
		if info, err := file.Info(); err == nil && !file.IsDir() && info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, file.Name())); err != nil {
				return removed, fmt.Errorf("failed to delete old log file %s: %w", file.Name(), err)
			}
			removed++
		}
	}
	return removed, nil
}

func parseLevel(level string) logrus.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return logrus.DebugLevel
	case "WARN", "WARNING":
		return logrus.WarnLevel
	case "ERROR":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func (l *Logger) entry(fields ...interface{}) *logrus.Entry {
	data := logrus.Fields{}
	if l.prefix != "" {
		data["component"] = l.prefix
	}
	for i := 0; i < len(fields); i += 2 {
		key := fmt.Sprint(fields[i])
		var val interface{} = "?"
		if i+1 < len(fields) {
			val = fields[i+1]
		}
		data[key] = val
	}
	return l.base.WithFields(data)
}

func (l *Logger) ShouldLog(level string) bool {
	if !l.config.Enabled {
		return false
	}
	return l.base.IsLevelEnabled(parseLevel(level))
}

func (l *Logger) Debug(msg string, fields ...interface{}) { l.entry(fields...).Debug(msg) }
func (l *Logger) Info(msg string, fields ...interface{})  { l.entry(fields...).Info(msg) }
func (l *Logger) Warn(msg string, fields ...interface{})  { l.entry(fields...).Warn(msg) }
func (l *Logger) Error(msg string, fields ...interface{}) { l.entry(fields...).Error(msg) }

func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
