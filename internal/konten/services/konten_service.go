package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pcc-sumsel/pcc-backend/internal/konten/models"
)

type KontenService struct {
	DB *sql.DB
}

func NewKontenService(db *sql.DB) *KontenService {
	return &KontenService{DB: db}
}

// GetListBerita mengembalikan artikel untuk situs publik, terbaru lebih dulu.
func (s *KontenService) GetListBerita() ([]models.Berita, error) {
	rows, err := s.DB.Query(`SELECT ID_Berita, Judul, Isi, Gambar, Tanggal FROM Berita ORDER BY Tanggal DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.Berita
	for rows.Next() {
		var b models.Berita
		if err := rows.Scan(&b.ID, &b.Judul, &b.Isi, &b.Gambar, &b.Tanggal); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

// CreateBerita menyimpan artikel baru.
func (s *KontenService) CreateBerita(b models.Berita) (string, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Tanggal == "" {
		b.Tanggal = time.Now().Format("2006-01-02")
	}
	_, err := s.DB.Exec(
		`INSERT INTO Berita (ID_Berita, Judul, Isi, Gambar, Tanggal) VALUES (?, ?, ?, ?, ?)`,
		b.ID, b.Judul, b.Isi, b.Gambar, b.Tanggal,
	)
	if err != nil {
		return "", err
	}
	return b.ID, nil
}

// UpdateBerita mengganti seluruh record artikel berdasarkan ID.
func (s *KontenService) UpdateBerita(b models.Berita) error {
	res, err := s.DB.Exec(
		`UPDATE Berita SET Judul = ?, Isi = ?, Gambar = ?, Tanggal = ? WHERE ID_Berita = ?`,
		b.Judul, b.Isi, b.Gambar, b.Tanggal, b.ID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("berita tidak ditemukan")
	}
	return nil
}

// DeleteBerita menghapus artikel berdasarkan ID.
func (s *KontenService) DeleteBerita(id string) error {
	res, err := s.DB.Exec(`DELETE FROM Berita WHERE ID_Berita = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("berita tidak ditemukan")
	}
	return nil
}

// GetListCarousel mengembalikan slide carousel sesuai urutan tampil.
func (s *KontenService) GetListCarousel() ([]models.CarouselItem, error) {
	rows, err := s.DB.Query(`SELECT ID_Carousel, Gambar, Judul, Urutan FROM Carousel ORDER BY Urutan`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.CarouselItem
	for rows.Next() {
		var c models.CarouselItem
		if err := rows.Scan(&c.ID, &c.Gambar, &c.Judul, &c.Urutan); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// CreateCarousel menyimpan slide baru.
func (s *KontenService) CreateCarousel(c models.CarouselItem) (string, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	_, err := s.DB.Exec(
		`INSERT INTO Carousel (ID_Carousel, Gambar, Judul, Urutan) VALUES (?, ?, ?, ?)`,
		c.ID, c.Gambar, c.Judul, c.Urutan,
	)
	if err != nil {
		return "", err
	}
	return c.ID, nil
}

// UpdateCarousel mengganti seluruh record slide berdasarkan ID.
func (s *KontenService) UpdateCarousel(c models.CarouselItem) error {
	res, err := s.DB.Exec(
		`UPDATE Carousel SET Gambar = ?, Judul = ?, Urutan = ? WHERE ID_Carousel = ?`,
		c.Gambar, c.Judul, c.Urutan, c.ID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("slide carousel tidak ditemukan")
	}
	return nil
}

// DeleteCarousel menghapus slide berdasarkan ID.
func (s *KontenService) DeleteCarousel(id string) error {
	res, err := s.DB.Exec(`DELETE FROM Carousel WHERE ID_Carousel = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("slide carousel tidak ditemukan")
	}
	return nil
}
