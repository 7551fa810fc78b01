package config

import (
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckle/internal/eventbus"
)

func tempService(t *testing.T) *configService {
	t.Helper()
	return &configService{filePath: filepath.Join(t.TempDir(), "config.toml")}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cs := tempService(t)
	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	cs := tempService(t)

	cfg := DefaultConfig()
	cfg.UISettings.SidebarHidden = true
	cfg.Scroll.ActivationOffset = 5
	require.NoError(t, cs.Save(cfg))

	loaded, err := cs.Load()
	require.NoError(t, err)
	assert.True(t, loaded.UISettings.SidebarHidden)
	assert.Equal(t, 5, loaded.Scroll.ActivationOffset)
	// Untouched fields keep their defaults
	assert.Equal(t, 10, loaded.Scroll.BackToTopOffset)
	assert.True(t, loaded.Watch.Enabled)
}

func TestSavePublishesConfigSaved(t *testing.T) {
	bus := eventbus.New()
	var saved atomic.Int32
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		saved.Add(1)
	})

	cs := tempService(t)
	cs.bus = bus
	require.NoError(t, cs.Save(DefaultConfig()))

	assert.Eventually(t, func() bool { return saved.Load() == 1 },
		time.Second, 10*time.Millisecond)
}
