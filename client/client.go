// Package client adalah lapisan data offline-first untuk dashboard PCC
// Sumsel. Semua koleksi (kegiatan, pasien, petugas, berita, ICD-10,
// carousel, log) dibaca dan dimutasi lewat lapisan ini: saat online server
// yang otoritatif, saat offline cache lokal yang otoritatif, dan setiap
// mutasi selalu di-write-through ke cache apa pun modenya.
package client

import (
	"context"

	"go.uber.org/zap"

	adminModels "github.com/pcc-sumsel/pcc-backend/internal/administrasi/models"
	kegiatanModels "github.com/pcc-sumsel/pcc-backend/internal/kegiatan/models"
	kontenModels "github.com/pcc-sumsel/pcc-backend/internal/konten/models"
	manajemenModels "github.com/pcc-sumsel/pcc-backend/internal/manajemen/models"
)

// Satu kunci cache per koleksi.
const (
	kunciKegiatan = "kegiatan"
	kunciPasien   = "pasien"
	kunciPetugas  = "petugas"
	kunciBerita   = "berita"
	kunciCarousel = "carousel"
	kunciICD10    = "icd10"
	kunciLog      = "log-petugas"
)

type Config struct {
	// BaseURL adalah alamat server tanpa path /api, mis. "https://pcc.sumsel.go.id".
	BaseURL string
	// CachePath adalah lokasi file cache SQLite.
	CachePath string
	// Logger opsional; nil berarti tanpa logging.
	Logger *zap.Logger
}

// Client merangkai seluruh lapisan: mode tracker, remote store, cache
// lokal, sesi, dan satu Koleksi per jenis entitas.
type Client struct {
	logger *zap.Logger
	cache  *Cache
	remote *Remote
	mode   *ModeTracker
	sesi   *Sesi

	Kegiatan *Koleksi[kegiatanModels.Kegiatan]
	Pasien   *Koleksi[adminModels.Pasien]
	Petugas  *Koleksi[manajemenModels.Petugas]
	Berita   *Koleksi[kontenModels.Berita]
	Carousel *Koleksi[kontenModels.CarouselItem]
	ICD10    *Koleksi[manajemenModels.ICD10]
	Log      *Koleksi[manajemenModels.LogPetugas]
}

func New(cfg Config) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cache, err := OpenCache(cfg.CachePath)
	if err != nil {
		return nil, err
	}

	remote := NewRemote(cfg.BaseURL, logger)
	mode := NewModeTracker(logger)
	sesi := NewSesi(remote, cache, mode, logger)

	c := &Client{
		logger: logger,
		cache:  cache,
		remote: remote,
		mode:   mode,
		sesi:   sesi,
	}

	c.Kegiatan = NewKoleksi(Deskriptor[kegiatanModels.Kegiatan]{
		KunciCache: kunciKegiatan,
		Path:       "/activities",
		KeyOf:      func(k kegiatanModels.Kegiatan) string { return k.ID },
	}, remote, cache, mode, logger)

	c.Pasien = NewKoleksi(Deskriptor[adminModels.Pasien]{
		KunciCache:  kunciPasien,
		Path:        "/patients",
		KeyOf:       func(p adminModels.Pasien) string { return p.ID },
		Terproteksi: true,
	}, remote, cache, mode, logger)

	c.Petugas = NewKoleksi(Deskriptor[manajemenModels.Petugas]{
		KunciCache:  kunciPetugas,
		Path:        "/officers",
		KeyOf:       func(p manajemenModels.Petugas) string { return p.ID },
		Terproteksi: true,
	}, remote, cache, mode, logger)

	c.Berita = NewKoleksi(Deskriptor[kontenModels.Berita]{
		KunciCache: kunciBerita,
		Path:       "/content/news",
		KeyOf:      func(b kontenModels.Berita) string { return b.ID },
	}, remote, cache, mode, logger)

	c.Carousel = NewKoleksi(Deskriptor[kontenModels.CarouselItem]{
		KunciCache: kunciCarousel,
		Path:       "/content/carousel",
		KeyOf:      func(ci kontenModels.CarouselItem) string { return ci.ID },
	}, remote, cache, mode, logger)

	// ICD-10 berkunci kode, bukan id
	c.ICD10 = NewKoleksi(Deskriptor[manajemenModels.ICD10]{
		KunciCache:  kunciICD10,
		Path:        "/icd10",
		KeyOf:       func(e manajemenModels.ICD10) string { return e.Kode },
		Terproteksi: true,
	}, remote, cache, mode, logger)

	c.Log = NewKoleksi(Deskriptor[manajemenModels.LogPetugas]{
		KunciCache:  kunciLog,
		Path:        "/logs",
		KeyOf:       func(l manajemenModels.LogPetugas) string { return l.ID },
		Terproteksi: true,
	}, remote, cache, mode, logger)

	return c, nil
}

// Mulai menjalankan probe konektivitas lalu memuat koleksi awal: koleksi
// publik selalu, koleksi terproteksi hanya jika ada sesi tersimpan.
func (c *Client) Mulai(ctx context.Context) {
	if err := c.remote.Ping(ctx); err != nil {
		c.logger.Warn("probe konektivitas gagal, memulai dalam mode offline", zap.Error(err))
		c.mode.SetOffline(true)
	} else {
		c.mode.SetOffline(false)
	}

	c.Kegiatan.Refresh(ctx)
	c.Berita.Refresh(ctx)
	c.Carousel.Refresh(ctx)

	if c.sesi.Aktif() {
		c.refreshTerproteksi(ctx)
	}
}

func (c *Client) refreshTerproteksi(ctx context.Context) {
	c.Pasien.Refresh(ctx)
	c.Petugas.Refresh(ctx)
	c.ICD10.Refresh(ctx)
	c.Log.Refresh(ctx)
}

// Login menjalankan rantai autentikasi sesi; jika berhasil, koleksi
// terproteksi langsung dimuat.
func (c *Client) Login(ctx context.Context, email, password string) bool {
	if !c.sesi.Login(ctx, email, password) {
		return false
	}
	c.refreshTerproteksi(ctx)
	return true
}

// Logout menutup sesi dan mengosongkan koleksi terproteksi dari memori.
// Snapshot koleksi di cache lokal tidak dihapus; hanya kunci sesi yang
// dibuang supaya sesi tidak pulih di start berikutnya.
func (c *Client) Logout() {
	c.sesi.Logout()
	c.Pasien.reset()
	c.Petugas.reset()
	c.ICD10.reset()
	c.Log.reset()
}

// ImporICD10 menerima hasil parse spreadsheet [{kode, nama}] dan
// menambahkannya dengan deduplikasi per kode.
func (c *Client) ImporICD10(ctx context.Context, entri []manajemenModels.ICD10) {
	c.ICD10.AddAll(ctx, entri)
}

// Sesi mengembalikan session manager.
func (c *Client) Sesi() *Sesi {
	return c.sesi
}

// Offline melaporkan mode saat ini.
func (c *Client) Offline() bool {
	return c.mode.Offline()
}

func (c *Client) Close() error {
	return c.cache.Close()
}
