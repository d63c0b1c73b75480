package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewZapLogger(t *testing.T) {
	t.Run("creates log directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		logDir := filepath.Join(tmpDir, "logs")
		logFile := filepath.Join(logDir, "app.log")

		_, err := NewZapLogger(Config{
			FilePath: logFile,
		})
		require.NoError(t, err)

		_, err = os.Stat(logDir)
		assert.NoError(t, err)
	})

	t.Run("no outputs configured falls back to nop", func(t *testing.T) {
		log, err := NewZapLogger(Config{})
		require.NoError(t, err)
		assert.NotNil(t, log)

		log.Info("discarded", nil)
	})
}

func TestZapLogger_WithField(t *testing.T) {
	log, err := NewZapLogger(Config{UseConsole: true})
	require.NoError(t, err)

	newLogger := log.WithField("key", "value")
	assert.NotNil(t, newLogger)
	assert.NotEqual(t, log, newLogger, "WithField should return a new logger instance")
}

func TestZapLogger_WithFields(t *testing.T) {
	log, err := NewZapLogger(Config{UseConsole: true})
	require.NoError(t, err)

	t.Run("empty fields return the same instance", func(t *testing.T) {
		assert.Equal(t, log, log.WithFields(nil))
	})

	t.Run("non-empty fields return a new instance", func(t *testing.T) {
		newLogger := log.WithFields(map[string]interface{}{"provider": "openai"})
		assert.NotEqual(t, log, newLogger)
	})
}

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel LogLevel
		expected zapcore.Level
	}{
		{"debug level", DebugLevel, zapcore.DebugLevel},
		{"info level", InfoLevel, zapcore.InfoLevel},
		{"warn level", WarnLevel, zapcore.WarnLevel},
		{"error level", ErrorLevel, zapcore.ErrorLevel},
		{"unknown level", LogLevel("verbose"), zapcore.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseLogLevel(tc.logLevel))
		})
	}
}

func TestBuildZapLogger(t *testing.T) {
	t.Run("file only logger", func(t *testing.T) {
		tmpDir := t.TempDir()
		logFile := filepath.Join(tmpDir, "app.log")

		config := Config{
			LogLevel:   InfoLevel,
			FilePath:   logFile,
			UseConsole: false,
		}

		zapLogger, err := buildZapLogger(config)
		require.NoError(t, err)
		assert.NotNil(t, zapLogger)

		zapLogger.Info("test message")

		_, err = os.Stat(logFile)
		assert.NoError(t, err)
	})

	t.Run("console only logger", func(t *testing.T) {
		config := Config{
			LogLevel:   InfoLevel,
			UseConsole: true,
		}

		zapLogger, err := buildZapLogger(config)
		require.NoError(t, err)
		assert.NotNil(t, zapLogger)
	})

	t.Run("both file and console logger", func(t *testing.T) {
		tmpDir := t.TempDir()
		logFile := filepath.Join(tmpDir, "app.log")

		config := Config{
			LogLevel:   InfoLevel,
			FilePath:   logFile,
			UseConsole: true,
		}

		zapLogger, err := buildZapLogger(config)
		require.NoError(t, err)
		assert.NotNil(t, zapLogger)

		zapLogger.Info("test message")

		_, err = os.Stat(logFile)
		assert.NoError(t, err)
	})
}

func TestInvalidDirectory(t *testing.T) {
	invalidPath := filepath.Join(string(filepath.Separator), "proc", "non-existent-dir", "app.log")
	config := Config{
		FilePath: invalidPath,
	}

	log, err := NewZapLogger(config)
	assert.Error(t, err)
	assert.Nil(t, log)
}
