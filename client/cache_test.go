package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bukaCacheUji(t *testing.T) *Cache {
	t.Helper()
	c, err := OpenCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCacheSaveMenimpaUtuh(t *testing.T) {
	c := bukaCacheUji(t)

	require.NoError(t, c.Save("kegiatan", []string{"a", "b"}))
	require.NoError(t, c.Save("kegiatan", []string{"c"}))

	assert.Equal(t, []string{"c"}, Load(c, "kegiatan", []string{}))
}

func TestCacheSaveIdempoten(t *testing.T) {
	c := bukaCacheUji(t)

	isi := []string{"x", "y"}
	require.NoError(t, c.Save("kegiatan", isi))
	require.NoError(t, c.Save("kegiatan", isi))

	assert.Equal(t, isi, Load(c, "kegiatan", []string{}))
}

func TestCacheLoadDefaultUntukKunciBaru(t *testing.T) {
	c := bukaCacheUji(t)

	assert.Equal(t, []string{}, Load(c, "belum-pernah-disimpan", []string{}))
	assert.Equal(t, "fallback", Load(c, "belum-pernah-disimpan", "fallback"))
}

func TestCacheLoadDefaultUntukIsiRusak(t *testing.T) {
	c := bukaCacheUji(t)

	// Tulis isi yang bukan JSON langsung ke tabel snapshot
	_, err := c.db.Exec(`INSERT INTO snapshot (kunci, nilai) VALUES (?, ?)`, "rusak", "{bukan json")
	require.NoError(t, err)

	assert.Equal(t, []string{"default"}, Load(c, "rusak", []string{"default"}))
}
