package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			logPath := filepath.Join(tempDir, "state", "clout.log")
			var console bytes.Buffer

			SetupLogger(tt.verbosity, Options{Console: &console, NoColor: true, LogFile: logPath})

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created")
		})
	}
}

func TestSetupLogger_ConsoleAndFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "clout.log")
	var console bytes.Buffer

	SetupLogger(1, Options{Console: &console, NoColor: true, LogFile: logPath})
	log.Info().Str("topic", "apps").Msg("rendering help")

	assert.Contains(t, console.String(), "rendering help")
	assert.Contains(t, console.String(), "topic=apps")
	assert.NotContains(t, console.String(), "\x1b[", "NoColor should strip escapes")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"rendering help"`)
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("CLOUT_STATE_DIR", "/custom/state")
	assert.Equal(t, filepath.Join("/custom/state", "clout.log"), getLogFilePath())
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("help")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"help"`)
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := WithFields(map[string]interface{}{
		"key1": "value1",
		"key2": 42,
	})
	logger.Info().Msg("test message with fields")

	assert.Contains(t, buf.String(), `"key1":"value1"`)
	assert.Contains(t, buf.String(), `"key2":42`)
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	LogCommand("apps:info", []string{"--app", "myapp"})

	output := buf.String()
	assert.Contains(t, output, "apps:info")
	assert.Contains(t, output, "myapp")
	assert.Contains(t, output, "Executing command")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	done := LogOperationStart(logger, "render")
	done()

	output := buf.String()
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, "duration")
}
