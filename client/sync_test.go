package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	kegiatanModels "github.com/pcc-sumsel/pcc-backend/internal/kegiatan/models"
	manajemenModels "github.com/pcc-sumsel/pcc-backend/internal/manajemen/models"
)

func bukaClientUji(t *testing.T, baseURL, cachePath string) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: baseURL, CachePath: cachePath, Logger: zap.NewNop()})
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

// serverMati mengembalikan base URL yang pasti tidak terjangkau.
func serverMati(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}

// serverUji meniru REST API: GET mengembalikan daftar kosong, mutasi bisa
// dibuat gagal lewat flag.
func serverUji(t *testing.T) (*httptest.Server, *atomic.Bool) {
	t.Helper()
	var gagalMutasi atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && gagalMutasi.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodGet {
			fmt.Fprint(w, `{"status":200,"message":"ok","data":[]}`)
			return
		}
		fmt.Fprint(w, `{"status":200,"message":"ok","data":null}`)
	}))
	t.Cleanup(srv.Close)
	return srv, &gagalMutasi
}

func TestAddKegiatanOfflineDenganCacheKosong(t *testing.T) {
	ctx := context.Background()
	cachePath := filepath.Join(t.TempDir(), "cache.db")

	c := bukaClientUji(t, serverMati(t), cachePath)
	c.Mulai(ctx)
	require.True(t, c.Offline(), "probe ke server mati harus menurunkan mode ke offline")

	c.Kegiatan.Add(ctx, kegiatanModels.Kegiatan{ID: "x1", Nama: "Vaccination Day", Status: kegiatanModels.StatusToDo})

	daftar := c.Kegiatan.Items()
	require.Len(t, daftar, 1)
	assert.Equal(t, "x1", daftar[0].ID)

	// Simulasi reload: client baru di atas file cache yang sama
	c2 := bukaClientUji(t, serverMati(t), cachePath)
	c2.Mulai(ctx)
	daftar2 := c2.Kegiatan.Items()
	require.Len(t, daftar2, 1)
	assert.Equal(t, "x1", daftar2[0].ID)
}

func TestCreateGagalOnlineBeralihKeOffline(t *testing.T) {
	ctx := context.Background()
	srv, gagalMutasi := serverUji(t)

	c := bukaClientUji(t, srv.URL, filepath.Join(t.TempDir(), "cache.db"))
	c.Mulai(ctx)
	require.False(t, c.Offline())

	gagalMutasi.Store(true)
	c.Kegiatan.Add(ctx, kegiatanModels.Kegiatan{ID: "k1", Nama: "Posko Mudik"})

	assert.True(t, c.Offline(), "create yang dibalas 500 harus menurunkan mode ke offline")

	dariCache := Load(c.cache, kunciKegiatan, []kegiatanModels.Kegiatan{})
	require.Len(t, dariCache, 1)
	assert.Equal(t, "k1", dariCache[0].ID)

	daftar := c.Kegiatan.Items()
	require.Len(t, daftar, 1)
	assert.Equal(t, "k1", daftar[0].ID)
}

func TestModeMonotonDalamSatuSesi(t *testing.T) {
	ctx := context.Background()
	srv, gagalMutasi := serverUji(t)

	c := bukaClientUji(t, srv.URL, filepath.Join(t.TempDir(), "cache.db"))
	c.Mulai(ctx)
	require.False(t, c.Offline())

	gagalMutasi.Store(true)
	c.Kegiatan.Add(ctx, kegiatanModels.Kegiatan{ID: "k1", Nama: "Posko"})
	require.True(t, c.Offline())

	// Server pulih; baca dan tulis berikutnya tetap tidak boleh
	// mengembalikan mode ke online
	gagalMutasi.Store(false)
	c.Kegiatan.Refresh(ctx)
	assert.True(t, c.Offline())
	c.Kegiatan.Add(ctx, kegiatanModels.Kegiatan{ID: "k2", Nama: "Posko Lebaran"})
	assert.True(t, c.Offline())
}

func TestWriteThroughSelaluMengisiCache(t *testing.T) {
	ctx := context.Background()
	srv, _ := serverUji(t)

	c := bukaClientUji(t, srv.URL, filepath.Join(t.TempDir(), "cache.db"))
	c.Mulai(ctx)
	require.False(t, c.Offline())

	k := kegiatanModels.Kegiatan{ID: "k1", Nama: "Bakti Sosial", Status: kegiatanModels.StatusToDo}
	c.Kegiatan.Add(ctx, k)

	dariCache := Load(c.cache, kunciKegiatan, []kegiatanModels.Kegiatan{})
	require.Len(t, dariCache, 1, "write-through harus mengisi cache walau mode online")
	// Saat online, server yang otoritatif untuk state in-memory; server uji
	// mengembalikan daftar kosong sehingga memori ikut kosong
	assert.Empty(t, c.Kegiatan.Items())

	k.Status = kegiatanModels.StatusDone
	c.Kegiatan.Update(ctx, k)
	dariCache = Load(c.cache, kunciKegiatan, []kegiatanModels.Kegiatan{})
	require.Len(t, dariCache, 1)
	assert.Equal(t, kegiatanModels.StatusDone, dariCache[0].Status)

	c.Kegiatan.Delete(ctx, "k1")
	dariCache = Load(c.cache, kunciKegiatan, []kegiatanModels.Kegiatan{})
	assert.Empty(t, dariCache)
}

func TestImporICD10DuaKaliTidakMenduplikasi(t *testing.T) {
	ctx := context.Background()
	cachePath := filepath.Join(t.TempDir(), "cache.db")

	c := bukaClientUji(t, serverMati(t), cachePath)
	c.Mulai(ctx)

	entri := []manajemenModels.ICD10{{Kode: "A00", Nama: "Kolera"}}
	c.ImporICD10(ctx, entri)
	c.ImporICD10(ctx, []manajemenModels.ICD10{{Kode: "A00", Nama: "Nama Lain"}})

	daftar := c.ICD10.Items()
	require.Len(t, daftar, 1)
	// Impor pertama yang menang
	assert.Equal(t, "Kolera", daftar[0].Nama)

	dariCache := Load(c.cache, kunciICD10, []manajemenModels.ICD10{})
	require.Len(t, dariCache, 1)
	assert.Equal(t, "A00", dariCache[0].Kode)
}

func TestImporICD10SatuPanggilanRemote(t *testing.T) {
	ctx := context.Background()
	var jumlahPost atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost {
			jumlahPost.Add(1)
			var entri []manajemenModels.ICD10
			require.NoError(t, json.NewDecoder(r.Body).Decode(&entri))
			assert.Len(t, entri, 3)
			fmt.Fprint(w, `{"status":200,"message":"ok","data":null}`)
			return
		}
		fmt.Fprint(w, `{"status":200,"message":"ok","data":[]}`)
	}))
	t.Cleanup(srv.Close)

	c := bukaClientUji(t, srv.URL, filepath.Join(t.TempDir(), "cache.db"))
	c.Mulai(ctx)
	require.False(t, c.Offline())

	c.ImporICD10(ctx, []manajemenModels.ICD10{
		{Kode: "A00", Nama: "Kolera"},
		{Kode: "A01", Nama: "Demam tifoid"},
		{Kode: "B01", Nama: "Varisela"},
	})

	// Seluruh batch dikirim dalam satu POST dan cache ditulis sekali
	assert.EqualValues(t, 1, jumlahPost.Load())
	dariCache := Load(c.cache, kunciICD10, []manajemenModels.ICD10{})
	require.Len(t, dariCache, 3)
}

func TestDeleteICD10BerdasarkanKode(t *testing.T) {
	ctx := context.Background()
	cachePath := filepath.Join(t.TempDir(), "cache.db")

	c := bukaClientUji(t, serverMati(t), cachePath)
	c.Mulai(ctx)

	c.ICD10.Add(ctx, manajemenModels.ICD10{Kode: "Z99", Nama: "Ketergantungan alat bantu"})
	require.Len(t, c.ICD10.Items(), 1)

	c.ICD10.Delete(ctx, "Z99")

	assert.Empty(t, c.ICD10.Items())
	assert.Empty(t, Load(c.cache, kunciICD10, []manajemenModels.ICD10{}))
}

func TestUpdateMenggantiRecordUtuh(t *testing.T) {
	ctx := context.Background()
	cachePath := filepath.Join(t.TempDir(), "cache.db")

	c := bukaClientUji(t, serverMati(t), cachePath)
	c.Mulai(ctx)

	c.Kegiatan.Add(ctx, kegiatanModels.Kegiatan{ID: "k1", Nama: "Posko", Lokasi: "Palembang", Status: kegiatanModels.StatusToDo})
	c.Kegiatan.Update(ctx, kegiatanModels.Kegiatan{ID: "k1", Nama: "Posko Kesehatan", Status: kegiatanModels.StatusOnProgress})

	daftar := c.Kegiatan.Items()
	require.Len(t, daftar, 1)
	assert.Equal(t, "Posko Kesehatan", daftar[0].Nama)
	assert.Equal(t, kegiatanModels.StatusOnProgress, daftar[0].Status)
	// Full replace: field yang tidak diisi ikut terganti
	assert.Empty(t, daftar[0].Lokasi)
}
