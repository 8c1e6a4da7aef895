package tgdango

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

// captureLog redirects the global logger for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	logger := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = logger })

	return &buf
}

func TestDeprecate(t *testing.T) {
	buf := captureLog(t)
	deprecated.Clear()

	deprecate("OldThing", "OLD_THING", "NewThing", "https://core.telegram.org/bots/api")
	deprecate("OldThing", "OLD_THING", "NewThing", "")

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("OldThing is deprecated")))
	assert.Contains(t, buf.String(), `"Use":"NewThing"`)
	assert.Contains(t, buf.String(), `"See":"https://core.telegram.org/bots/api"`)
}

func TestDeprecate_Ignored(t *testing.T) {
	buf := captureLog(t)
	deprecated.Clear()
	t.Setenv("IGNORE_DEPRECATED_QUIET_THING", "1")

	deprecate("QuietThing", "QUIET_THING", "", "")

	assert.Empty(t, buf.String())
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, "-1001234567890", formatID(-1001234567890))
	assert.Equal(t, "7", formatID(7))
}
