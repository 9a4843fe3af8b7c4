package tidelog_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/tide-fwk/tide/internal/tidelog"
)

func TestConfigFromPrefixDefaultsToStderrInfo(t *testing.T) {
	unsetTidecLogEnv(t)

	cfg := tidelog.ConfigFromPrefix("TIDEC")
	require.Equal(t, tidelog.WriterStderr, cfg.Writer)
	require.Equal(t, zapcore.InfoLevel, cfg.Level)
}

func TestConfigFromPrefixReadsLevelAndWriter(t *testing.T) {
	t.Setenv("TIDEC_LOG", "debug")
	t.Setenv("TIDEC_LOG_WRITER", "stdout")
	t.Setenv("TIDEC_LOG_COLOR", "never")
	t.Setenv("TIDEC_LOG_LINE_NUMBERS", "1")

	cfg := tidelog.ConfigFromPrefix("TIDEC")
	require.Equal(t, zapcore.DebugLevel, cfg.Level)
	require.Equal(t, tidelog.WriterStdout, cfg.Writer)
	require.False(t, cfg.Color)
	require.True(t, cfg.LineNumbers)
}

func TestConfigFromPrefixTreatsUnknownWriterAsFilePath(t *testing.T) {
	t.Setenv("TIDEC_LOG_WRITER", "/tmp/tidec.log")
	cfg := tidelog.ConfigFromPrefix("TIDEC")
	require.Equal(t, tidelog.WriterFile, cfg.Writer)
	require.Equal(t, "/tmp/tidec.log", cfg.FilePath)
}

func TestNewBuildsALogger(t *testing.T) {
	logger, err := tidelog.New(tidelog.Config{Level: zapcore.InfoLevel, Writer: tidelog.WriterStdout})
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func unsetTidecLogEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TIDEC_LOG", "TIDEC_LOG_COLOR", "TIDEC_LOG_WRITER", "TIDEC_LOG_LINE_NUMBERS"} {
		require.NoError(t, os.Unsetenv(k))
	}
}
