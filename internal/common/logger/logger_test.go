package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "ton-mini-app-backend", false)
	buf.Reset()

	Info().Str("wallet", "EQAbc").Msg("wallet linked")
	Debug().Msg("hidden at info level")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "wallet linked", entry["message"])
	assert.Equal(t, "ton-mini-app-backend", entry["service"])
	assert.Equal(t, "EQAbc", entry["wallet"])
	assert.Contains(t, entry, "timestamp")
}

func TestInitWithWriter_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, "svc", true)
	buf.Reset()

	Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
