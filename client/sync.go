package client

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Deskriptor memparametrikan satu koleksi entitas: kunci cache, path remote,
// cara mengambil kunci entitas, dan apakah endpoint-nya butuh bearer token.
// Satu deskriptor menggantikan kuartet add/update/delete/refresh yang dulu
// ditulis ulang per jenis entitas.
type Deskriptor[T any] struct {
	KunciCache  string
	Path        string
	KeyOf       func(T) string
	Terproteksi bool
}

// Koleksi menyinkronkan satu jenis entitas antara server, cache lokal, dan
// state in-memory. Sumber yang otoritatif ditentukan oleh ModeTracker:
// online berarti server, offline berarti cache lokal.
type Koleksi[T any] struct {
	desc   Deskriptor[T]
	remote *Remote
	cache  *Cache
	mode   *ModeTracker
	logger *zap.Logger

	mu    sync.RWMutex
	items []T
}

func NewKoleksi[T any](desc Deskriptor[T], remote *Remote, cache *Cache, mode *ModeTracker, logger *zap.Logger) *Koleksi[T] {
	return &Koleksi[T]{
		desc:   desc,
		remote: remote,
		cache:  cache,
		mode:   mode,
		logger: logger,
	}
}

// Items mengembalikan salinan state in-memory saat ini.
func (k *Koleksi[T]) Items() []T {
	k.mu.RLock()
	defer k.mu.RUnlock()
	out := make([]T, len(k.items))
	copy(out, k.items)
	return out
}

func (k *Koleksi[T]) setItems(items []T) {
	k.mu.Lock()
	k.items = items
	k.mu.Unlock()
}

// reset mengosongkan state in-memory tanpa menyentuh cache. Dipakai saat
// logout untuk koleksi terproteksi.
func (k *Koleksi[T]) reset() {
	k.setItems(nil)
}

// Refresh mengisi ulang state in-memory dari sumber yang otoritatif.
// Saat online state diganti dengan hasil server; kegagalan apa pun
// menurunkan mode ke offline dan jatuh ke cache lokal. Saat offline
// panggilan jaringan dilewati sama sekali.
func (k *Koleksi[T]) Refresh(ctx context.Context) {
	if !k.mode.Offline() {
		var list []T
		if err := k.remote.List(ctx, k.desc.Path, k.desc.Terproteksi, &list); err != nil {
			k.logger.Warn("gagal memuat koleksi dari server",
				zap.String("koleksi", k.desc.KunciCache),
				zap.Error(err),
			)
			k.mode.SetOffline(true)
		} else {
			k.setItems(list)
			return
		}
	}
	k.setItems(Load(k.cache, k.desc.KunciCache, []T{}))
}

// mutate menjalankan protokol mutasi generik:
//  1. saat online, coba panggilan remote; sukses diikuti Refresh supaya
//     state memuat kebenaran server, gagal menurunkan mode ke offline;
//  2. write-through ke cache lokal selalu dilakukan, apa pun modenya;
//  3. saat offline, state in-memory diisi dari hasil transformasi lokal.
func (k *Koleksi[T]) mutate(ctx context.Context, op string, panggilanRemote func() error, terapkan func([]T) []T) {
	if !k.mode.Offline() {
		if err := panggilanRemote(); err != nil {
			k.logger.Warn("mutasi remote gagal",
				zap.String("koleksi", k.desc.KunciCache),
				zap.String("operasi", op),
				zap.Error(err),
			)
			k.mode.SetOffline(true)
		} else {
			k.Refresh(ctx)
		}
	}

	lokal := terapkan(Load(k.cache, k.desc.KunciCache, []T{}))
	if err := k.cache.Save(k.desc.KunciCache, lokal); err != nil {
		k.logger.Error("gagal menulis cache lokal",
			zap.String("koleksi", k.desc.KunciCache),
			zap.Error(err),
		)
	}

	if k.mode.Offline() {
		k.setItems(lokal)
	}
}

// Add menambahkan satu entitas. Kunci yang sudah ada dimenangkan oleh entri
// lama; inilah yang membuat impor ulang ICD-10 menjadi no-op per kode.
func (k *Koleksi[T]) Add(ctx context.Context, item T) {
	key := k.desc.KeyOf(item)
	k.mutate(ctx, "add",
		func() error { return k.remote.Create(ctx, k.desc.Path, k.desc.Terproteksi, item) },
		func(list []T) []T {
			for _, ada := range list {
				if k.desc.KeyOf(ada) == key {
					return list
				}
			}
			return append(list, item)
		},
	)
}

// AddAll menambahkan entri yang kuncinya belum dikenal; entri yang sudah ada
// dilewati. Jalur masuk impor massal ICD-10: seluruh batch dikirim dalam
// satu POST (endpoint create menerima array) dan cache ditulis satu kali,
// bukan satu panggilan per entri.
func (k *Koleksi[T]) AddAll(ctx context.Context, items []T) {
	ada := make(map[string]bool)
	for _, it := range k.Items() {
		ada[k.desc.KeyOf(it)] = true
	}
	var baru []T
	for _, it := range items {
		key := k.desc.KeyOf(it)
		if ada[key] {
			continue
		}
		ada[key] = true
		baru = append(baru, it)
	}
	if len(baru) == 0 {
		return
	}

	k.mutate(ctx, "add-all",
		func() error { return k.remote.Create(ctx, k.desc.Path, k.desc.Terproteksi, baru) },
		func(list []T) []T {
			dikenal := make(map[string]bool, len(list))
			for _, it := range list {
				dikenal[k.desc.KeyOf(it)] = true
			}
			for _, it := range baru {
				if dikenal[k.desc.KeyOf(it)] {
					continue
				}
				dikenal[k.desc.KeyOf(it)] = true
				list = append(list, it)
			}
			return list
		},
	)
}

// Update mengganti entitas secara utuh berdasarkan kuncinya; tidak pernah
// partial patch, supaya salinan remote dan lokal tidak saling menyimpang.
func (k *Koleksi[T]) Update(ctx context.Context, item T) {
	key := k.desc.KeyOf(item)
	k.mutate(ctx, "update",
		func() error { return k.remote.Replace(ctx, k.desc.Path, key, k.desc.Terproteksi, item) },
		func(list []T) []T {
			for i, ada := range list {
				if k.desc.KeyOf(ada) == key {
					list[i] = item
				}
			}
			return list
		},
	)
}

// Delete menghapus entitas berdasarkan kunci.
func (k *Koleksi[T]) Delete(ctx context.Context, key string) {
	k.mutate(ctx, "delete",
		func() error { return k.remote.Remove(ctx, k.desc.Path, key, k.desc.Terproteksi) },
		func(list []T) []T {
			hasil := make([]T, 0, len(list))
			for _, ada := range list {
				if k.desc.KeyOf(ada) != key {
					hasil = append(hasil, ada)
				}
			}
			return hasil
		},
	)
}
