package client

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Cache adalah penyimpanan key-value tahan lama berbasis SQLite: satu baris
// per koleksi, nilainya snapshot JSON utuh. Save selalu menimpa snapshot
// sebelumnya; tidak ada semantik merge.
type Cache struct {
	db *sql.DB
}

// OpenCache membuka (atau membuat) file cache di path yang diberikan.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("gagal membuka cache lokal: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("gagal membuka cache lokal: %w", err)
	}

	// SQLite hanya mendukung satu penulis
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshot (
			kunci TEXT PRIMARY KEY,
			nilai TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("gagal menyiapkan skema cache: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Save menimpa snapshot untuk satu kunci dengan nilai baru secara utuh.
func (c *Cache) Save(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("gagal menyusun snapshot %s: %w", key, err)
	}
	if _, err := c.db.Exec(`INSERT OR REPLACE INTO snapshot (kunci, nilai) VALUES (?, ?)`, key, string(data)); err != nil {
		return fmt.Errorf("gagal menyimpan snapshot %s: %w", key, err)
	}
	return nil
}

// Hapus membuang snapshot untuk satu kunci. Kunci yang tidak ada bukan error.
func (c *Cache) Hapus(key string) error {
	if _, err := c.db.Exec(`DELETE FROM snapshot WHERE kunci = ?`, key); err != nil {
		return fmt.Errorf("gagal menghapus snapshot %s: %w", key, err)
	}
	return nil
}

// Load membaca snapshot untuk satu kunci. Kunci yang belum pernah disimpan
// atau isi yang tidak bisa diparse menghasilkan nilai default tanpa error:
// koleksi yang rusak diperlakukan sama dengan koleksi yang kosong.
func Load[T any](c *Cache, key string, def T) T {
	var raw string
	err := c.db.QueryRow(`SELECT nilai FROM snapshot WHERE kunci = ?`, key).Scan(&raw)
	if err != nil {
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return def
	}
	return v
}
