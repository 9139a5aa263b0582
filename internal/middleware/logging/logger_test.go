package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerFieldsAndPrefix(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)

	logger := NewFromLogrus(base, "App").WithPrefix("HTTP")
	logger.Info("Request completed", "status", 200, "path")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "Request completed", entry.Message)
	assert.Equal(t, "App [HTTP]", entry.Data["component"])
	assert.Equal(t, 200, entry.Data["status"])
	assert.Equal(t, "?", entry.Data["path"])
}

func TestLoggerLevelFiltering(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.WarnLevel)

	logger := NewFromLogrus(base, "")
	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	require.Len(t, hook.AllEntries(), 1)
	assert.True(t, logger.ShouldLog("ERROR"))
	assert.False(t, logger.ShouldLog("DEBUG"))
}

func TestNewLoggerWritesDailyFile(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(&Config{Enabled: true, Level: "DEBUG", LogsDir: dir}, "Test")
	defer logger.Close()

	logger.Info("hello", "key", "value")

	data, err := os.ReadFile(filepath.Join(dir, time.Now().Format("2006-01-02")+".log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "key=value")
}

func TestRemoveLogsOlderThan(t *testing.T) {
	dir := t.TempDir()
	oldFile := filepath.Join(dir, "2000-01-01.log")
	newFile := filepath.Join(dir, "today.log")
	require.NoError(t, os.WriteFile(oldFile, []byte("old"), 0644))
	require.NoError(t, os.WriteFile(newFile, []byte("new"), 0644))

	past := time.Now().AddDate(0, 0, -30)
	require.NoError(t, os.Chtimes(oldFile, past, past))

	removed, err := removeLogsOlderThan(dir, time.Now().AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, oldFile)
	assert.FileExists(t, newFile)
}
