package logging_test

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cellprof/cmd/profilectl/internal/config"
	"github.com/katalvlaran/cellprof/cmd/profilectl/internal/logging"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(config.LogConfig{Level: "warn"}, &buf)

	log.Info("hidden")
	log.Warn("shown", "segments", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "profilectl")
	assert.Contains(t, out, "segments=3")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(config.LogConfig{Level: "debug", JSON: true}, &buf)
	log.Debug("loaded", "size", 40)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "loaded", line["@message"])
	assert.Equal(t, "profilectl", line["@module"])
	assert.EqualValues(t, 40, line["size"])
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(config.LogConfig{Level: "chatty"}, &buf)
	log.Debug("hidden")
	log.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestDiscard(t *testing.T) {
	log := logging.Discard()
	assert.False(t, log.IsError())
}
