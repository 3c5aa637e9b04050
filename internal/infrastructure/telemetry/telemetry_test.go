package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		shutdown, err := Setup("painel-test", false)
		require.NoError(t, err)
		require.NoError(t, shutdown(context.Background()))
	})

	t.Run("stdout exporter", func(t *testing.T) {
		shutdown, err := Setup("painel-test", true)
		require.NoError(t, err)
		require.NoError(t, shutdown(context.Background()))
	})
}
