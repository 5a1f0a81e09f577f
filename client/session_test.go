package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	manajemenModels "github.com/pcc-sumsel/pcc-backend/internal/manajemen/models"
)

// serverLogin meniru endpoint login: menerima pasangan kredensial yang
// dikenal, menolak sisanya.
func serverLogin(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/api/auth/login" {
			fmt.Fprint(w, `{"status":200,"message":"Login berhasil","data":{"petugas":{"id":"p1","email":"dina@pcc.sumsel.go.id","nama":"Dina","role":"petugas","password":"rahasia"},"token":"token-uji"}}`)
			return
		}
		if r.Method == http.MethodGet {
			fmt.Fprint(w, `{"status":200,"message":"ok","data":[]}`)
			return
		}
		fmt.Fprint(w, `{"status":200,"message":"ok","data":null}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginRemoteBerhasil(t *testing.T) {
	ctx := context.Background()
	cachePath := filepath.Join(t.TempDir(), "cache.db")

	c := bukaClientUji(t, serverLogin(t).URL, cachePath)
	c.Mulai(ctx)

	require.True(t, c.Login(ctx, "dina@pcc.sumsel.go.id", "rahasia"))
	require.NotNil(t, c.Sesi().Identitas())
	assert.Equal(t, "p1", c.Sesi().Identitas().ID)
	assert.Equal(t, "token-uji", c.Sesi().Kredensial())
	assert.False(t, c.Offline())
}

func TestSesiBertahanMelewatiReload(t *testing.T) {
	ctx := context.Background()
	cachePath := filepath.Join(t.TempDir(), "cache.db")

	c := bukaClientUji(t, serverLogin(t).URL, cachePath)
	require.True(t, c.Login(ctx, "dina@pcc.sumsel.go.id", "rahasia"))

	// Client baru di atas cache yang sama harus memulihkan sesi
	c2 := bukaClientUji(t, serverMati(t), cachePath)
	require.True(t, c2.Sesi().Aktif())
	assert.Equal(t, "p1", c2.Sesi().Identitas().ID)
	assert.Equal(t, "token-uji", c2.Sesi().Kredensial())
}

func TestSesiTidakPulihSetelahLogout(t *testing.T) {
	ctx := context.Background()
	cachePath := filepath.Join(t.TempDir(), "cache.db")

	c := bukaClientUji(t, serverLogin(t).URL, cachePath)
	require.True(t, c.Login(ctx, "dina@pcc.sumsel.go.id", "rahasia"))
	c.Logout()

	// Client baru di atas cache yang sama: sesi yang sudah ditutup tidak
	// boleh pulih kembali
	c2 := bukaClientUji(t, serverMati(t), cachePath)
	assert.False(t, c2.Sesi().Aktif())
	assert.Empty(t, c2.Sesi().Kredensial())
}

func TestLoginDarurat(t *testing.T) {
	ctx := context.Background()
	cachePath := filepath.Join(t.TempDir(), "cache.db")

	c := bukaClientUji(t, serverMati(t), cachePath)
	c.Mulai(ctx)

	require.True(t, c.Login(ctx, "admin@pcc.sumsel.go.id", "admin"))
	require.NotNil(t, c.Sesi().Identitas())
	assert.Equal(t, manajemenModels.RoleAdmin, c.Sesi().Identitas().Role)
	assert.Equal(t, KredensialOffline, c.Sesi().Kredensial())
	assert.True(t, c.Offline())
}

func TestLoginOfflineDariCachePetugas(t *testing.T) {
	ctx := context.Background()
	cachePath := filepath.Join(t.TempDir(), "cache.db")

	c := bukaClientUji(t, serverMati(t), cachePath)
	require.NoError(t, c.cache.Save(kunciPetugas, []manajemenModels.Petugas{
		{ID: "p7", Email: "budi@pcc.sumsel.go.id", Nama: "Budi", Password: "sandi-budi", Role: manajemenModels.RolePetugas},
	}))
	c.Mulai(ctx)

	require.True(t, c.Login(ctx, "budi@pcc.sumsel.go.id", "sandi-budi"))
	require.NotNil(t, c.Sesi().Identitas())
	assert.Equal(t, "p7", c.Sesi().Identitas().ID)
	assert.Equal(t, KredensialOffline, c.Sesi().Kredensial())
}

func TestLoginGagalSemuaJalur(t *testing.T) {
	ctx := context.Background()
	cachePath := filepath.Join(t.TempDir(), "cache.db")

	c := bukaClientUji(t, serverMati(t), cachePath)
	c.Mulai(ctx)

	assert.False(t, c.Login(ctx, "tidak@dikenal.go.id", "salah"))
	assert.False(t, c.Sesi().Aktif())
}

func TestLogoutMengosongkanMemoriBukanCache(t *testing.T) {
	ctx := context.Background()
	cachePath := filepath.Join(t.TempDir(), "cache.db")

	c := bukaClientUji(t, serverMati(t), cachePath)
	require.NoError(t, c.cache.Save(kunciPetugas, []manajemenModels.Petugas{
		{ID: "p7", Email: "budi@pcc.sumsel.go.id", Password: "sandi-budi"},
	}))
	c.Mulai(ctx)
	require.True(t, c.Login(ctx, "budi@pcc.sumsel.go.id", "sandi-budi"))
	require.NotEmpty(t, c.Petugas.Items())

	c.Logout()

	assert.False(t, c.Sesi().Aktif())
	assert.Empty(t, c.Petugas.Items())
	assert.Empty(t, c.Pasien.Items())
	// Cache tidak disentuh: login offline berikutnya masih menemukan petugas
	require.True(t, c.Login(ctx, "budi@pcc.sumsel.go.id", "sandi-budi"))
}
