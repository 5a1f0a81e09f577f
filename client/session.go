package client

import (
	"context"
	"sync"

	"go.uber.org/zap"

	manajemenModels "github.com/pcc-sumsel/pcc-backend/internal/manajemen/models"
)

const (
	kunciSesiIdentitas  = "sesi-identitas"
	kunciSesiKredensial = "sesi-kredensial"

	// KredensialOffline adalah kredensial sentinel untuk sesi yang
	// diautentikasi tanpa server.
	KredensialOffline = "offline"

	// Pasangan kredensial darurat, selalu diterima jika login remote gagal.
	emailDarurat    = "admin@pcc.sumsel.go.id"
	passwordDarurat = "admin"
)

// Sesi memegang identitas petugas yang sedang login beserta kredensialnya,
// dan menyimpannya ke cache lokal supaya sesi bertahan melewati reload.
type Sesi struct {
	remote *Remote
	cache  *Cache
	mode   *ModeTracker
	logger *zap.Logger

	mu         sync.RWMutex
	identitas  *manajemenModels.Petugas
	kredensial string
}

func NewSesi(remote *Remote, cache *Cache, mode *ModeTracker, logger *zap.Logger) *Sesi {
	s := &Sesi{
		remote: remote,
		cache:  cache,
		mode:   mode,
		logger: logger,
	}
	s.pulihkan()
	return s
}

// pulihkan memuat sesi tersimpan dari cache lokal saat aplikasi start.
func (s *Sesi) pulihkan() {
	identitas := Load[*manajemenModels.Petugas](s.cache, kunciSesiIdentitas, nil)
	kredensial := Load(s.cache, kunciSesiKredensial, "")
	if identitas == nil || kredensial == "" {
		return
	}
	s.mu.Lock()
	s.identitas = identitas
	s.kredensial = kredensial
	s.mu.Unlock()
	s.remote.SetToken(kredensial)
}

// Identitas mengembalikan petugas yang sedang login, atau nil.
func (s *Sesi) Identitas() *manajemenModels.Petugas {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identitas
}

// Kredensial mengembalikan token bearer sesi ini, atau string kosong.
func (s *Sesi) Kredensial() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kredensial
}

// Aktif melaporkan apakah ada petugas yang sedang login.
func (s *Sesi) Aktif() bool {
	return s.Identitas() != nil
}

func (s *Sesi) simpan(p *manajemenModels.Petugas, kredensial string) {
	s.mu.Lock()
	s.identitas = p
	s.kredensial = kredensial
	s.mu.Unlock()

	s.remote.SetToken(kredensial)
	if err := s.cache.Save(kunciSesiIdentitas, p); err != nil {
		s.logger.Error("gagal menyimpan identitas sesi", zap.Error(err))
	}
	if err := s.cache.Save(kunciSesiKredensial, kredensial); err != nil {
		s.logger.Error("gagal menyimpan kredensial sesi", zap.Error(err))
	}
}

// Login menjalankan rantai autentikasi dengan urutan ketat:
//  1. autentikasi remote; sukses menurunkan mode ke online;
//  2. pasangan kredensial darurat; cocok berarti identitas admin lokal
//     disintesis dan mode dinaikkan ke offline;
//  3. pencocokan email+password terhadap salinan petugas di cache lokal;
//  4. gagal semua: false.
//
// Kegagalan jaringan dan kredensial yang ditolak server sengaja jatuh ke
// jalur yang sama di langkah 1.
func (s *Sesi) Login(ctx context.Context, email, password string) bool {
	petugas, token, err := s.remote.Login(ctx, email, password)
	if err == nil {
		s.simpan(petugas, token)
		s.mode.SetOffline(false)
		s.logger.Info("login remote berhasil", zap.String("email", email))
		return true
	}
	s.logger.Warn("login remote gagal, mencoba jalur offline", zap.Error(err))

	if email == emailDarurat && password == passwordDarurat {
		s.simpan(&manajemenModels.Petugas{
			ID:    "admin-darurat",
			Email: emailDarurat,
			Nama:  "Administrator PCC",
			Role:  manajemenModels.RoleAdmin,
		}, KredensialOffline)
		s.mode.SetOffline(true)
		return true
	}

	daftar := Load(s.cache, kunciPetugas, []manajemenModels.Petugas{})
	for i := range daftar {
		if daftar[i].Email == email && daftar[i].Password == password {
			s.simpan(&daftar[i], KredensialOffline)
			return true
		}
	}
	return false
}

// Logout menghancurkan sesi: identitas dan kredensial dihapus dari memori
// maupun dari cache lokal, supaya start berikutnya tidak memulihkan sesi
// yang sudah ditutup. Snapshot koleksi (termasuk salinan petugas untuk
// login offline) sengaja tidak disentuh.
func (s *Sesi) Logout() {
	s.mu.Lock()
	s.identitas = nil
	s.kredensial = ""
	s.mu.Unlock()
	s.remote.SetToken("")

	if err := s.cache.Hapus(kunciSesiIdentitas); err != nil {
		s.logger.Error("gagal menghapus identitas sesi dari cache", zap.Error(err))
	}
	if err := s.cache.Hapus(kunciSesiKredensial); err != nil {
		s.logger.Error("gagal menghapus kredensial sesi dari cache", zap.Error(err))
	}
}
