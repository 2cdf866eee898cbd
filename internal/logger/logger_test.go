package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	defer Configure(Config{Level: InfoLevel, Pretty: true})

	var output bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &output})

	logger := For("planner")
	logger.Info().Msg("hidden")
	logger.Warn().Uint64("combinations", 3).Msg("visible")

	lines := bytes.Split(bytes.TrimSpace(output.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "planner", entry["component"])
	assert.Equal(t, float64(3), entry["combinations"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
}
