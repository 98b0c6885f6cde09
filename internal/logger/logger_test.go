//go:build unit

package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	t.Run("sets level and writes to output", func(t *testing.T) {
		// Prepare
		var buf bytes.Buffer
		defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

		// Execute
		err := Init("warn", &buf)
		log.Info().Msg("hidden")
		log.Warn().Msg("shown")

		// Check
		assert.NoError(t, err, "valid level")
		assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel(), "global level set")
		assert.NotContains(t, buf.String(), "hidden", "info suppressed")
		assert.Contains(t, buf.String(), "shown", "warn written")
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		// Execute
		err := Init("chatty", &bytes.Buffer{})

		// Check
		assert.Error(t, err, "unknown level rejected")
	})
}
