package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/milk9111/treasurehunt/prefabs"
)

func TestReloaderSkipsUnchangedContent(t *testing.T) {
	dir := t.TempDir()
	old := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = old })

	data, err := prefabs.PrefabsFS.ReadFile("gold.yaml")
	require.NoError(t, err)
	path := filepath.Join(dir, "gold.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	r := &reloader{log: zaptest.NewLogger(t), fingerprints: make(map[string]uint64)}
	fp, err := prefabs.Fingerprint("gold")
	require.NoError(t, err)
	r.fingerprints["gold"] = fp

	assert.False(t, r.changed("gold"))

	require.NoError(t, os.WriteFile(path, append(data, []byte("\n# tweak\n")...), 0o644))
	assert.True(t, r.changed("gold"))
	assert.False(t, r.changed("gold"))
}

func TestEffectsParticlesExpire(t *testing.T) {
	fx := newEffects(zaptest.NewLogger(t), nil)
	fx.SpawnParticle("coin", 10, 10)
	for i := 0; i < particleFrames-1; i++ {
		fx.update()
	}
	assert.Len(t, fx.particles, 1)
	fx.update()
	assert.Empty(t, fx.particles)
}

func TestSynthesizedToneLength(t *testing.T) {
	coin := tones["coin"]
	pcm := synthesize(coin)
	assert.Len(t, pcm, int(coin.duration*sampleRate)*4)
}
