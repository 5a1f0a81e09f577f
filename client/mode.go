package client

import (
	"sync"

	"go.uber.org/zap"
)

// ModeTracker memegang satu flag global: apakah aplikasi berjalan offline.
// Flag ini bersifat satu arah di dalam satu sesi: sekali offline, tidak ada
// operasi baca/tulis yang mengembalikannya ke online — hanya probe saat
// start dan login remote yang berhasil yang boleh menurunkannya kembali.
type ModeTracker struct {
	mu      sync.Mutex
	offline bool
	logger  *zap.Logger
}

func NewModeTracker(logger *zap.Logger) *ModeTracker {
	return &ModeTracker{logger: logger}
}

// Offline melaporkan mode saat ini.
func (m *ModeTracker) Offline() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.offline
}

// SetOffline menetapkan mode. Transisi dicatat sebagai peringatan, bukan
// error: peralihan mode tidak pernah disajikan sebagai kegagalan ke pengguna.
func (m *ModeTracker) SetOffline(offline bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.offline == offline {
		return
	}
	m.offline = offline
	if offline {
		m.logger.Warn("beralih ke mode offline, data dibaca dari cache lokal")
	} else {
		m.logger.Info("kembali ke mode online")
	}
}
