package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, StoreDynamoDB, cfg.StoreDriver)
		assert.Equal(t, 5, cfg.RollupTxMaxAttempts)
		assert.Equal(t, 10, cfg.DashboardBatchSize)
		assert.Equal(t, 200*time.Millisecond, cfg.DashboardBatchInterval)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("STORE_DRIVER", "memory")
		t.Setenv("DASHBOARD_BATCH_SIZE", "50")
		t.Setenv("DASHBOARD_BATCH_INTERVAL", "1s")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, StoreMemory, cfg.StoreDriver)
		assert.Equal(t, 10, cfg.DashboardBatchSize)
		assert.Equal(t, time.Second, cfg.DashboardBatchInterval)
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "firestore")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("malformed number", func(t *testing.T) {
		t.Setenv("ROLLUP_TX_MAX_ATTEMPTS", "many")
		_, err := Load()
		assert.Error(t, err)
	})
}
