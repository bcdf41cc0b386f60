package observability_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usermap/internal/observability"
)

func TestLogger_ComponentLabel(t *testing.T) {
	var buf bytes.Buffer
	log := observability.NewLogger("store", &buf, slog.LevelDebug)

	log.Debug("case-shifting key", "from", "Bob", "to", "bob")

	out := buf.String()
	assert.Contains(t, out, "component=store")
	assert.Contains(t, out, "case-shifting key")
	assert.Contains(t, out, "from=Bob")
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := observability.NewLogger("store", &buf, slog.LevelError)

	log.Debug("hidden")
	log.Error("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

func TestLogger_Named(t *testing.T) {
	var buf bytes.Buffer
	log := observability.NewLogger("usermap", &buf, slog.LevelInfo)

	log.Named("directory").Info("lookup")
	assert.Contains(t, buf.String(), "component=directory")
}

func TestParseLevel(t *testing.T) {
	level, err := observability.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = observability.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	// Must not panic or write anywhere.
	observability.Nop().Error("dropped")
}
