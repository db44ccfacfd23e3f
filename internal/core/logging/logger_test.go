package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger := Component("menu")
	logger.Info().Msg("opened")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "menu", entry["cmp"])
	assert.Equal(t, "opened", entry["message"])
}
