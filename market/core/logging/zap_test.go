package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogLevel(t *testing.T) {
	require.Equal(t, Production, NewLogLevel(true))
	require.Equal(t, Development, NewLogLevel(false))
}

func TestZapLoggerWithTags(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.With("module", "marketplace").Info("query", "name", "details")
	logger.Debugf("swap %s", "1")

	entries := logs.All()
	require.Len(t, entries, 2)

	require.Equal(t, "query", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "marketplace", fields["module"])
	require.Equal(t, "details", fields["name"])

	require.Equal(t, "swap 1", entries[1].Message)
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.With("k", "v").Error("dropped")
	require.NotNil(t, logger.Inner())
}
