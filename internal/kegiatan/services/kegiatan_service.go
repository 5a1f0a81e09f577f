package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/pcc-sumsel/pcc-backend/internal/kegiatan/models"
)

type KegiatanService struct {
	DB *sql.DB
}

func NewKegiatanService(db *sql.DB) *KegiatanService {
	return &KegiatanService{DB: db}
}

// GetListKegiatan mengembalikan semua kegiatan, terbaru lebih dulu.
func (s *KegiatanService) GetListKegiatan() ([]models.Kegiatan, error) {
	query := `
		SELECT ID_Kegiatan, Nama, Tanggal_Mulai, Tanggal_Selesai, Penyelenggara, Lokasi, Status
		FROM Kegiatan
		ORDER BY Tanggal_Mulai DESC
	`
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.Kegiatan
	for rows.Next() {
		var k models.Kegiatan
		if err := rows.Scan(&k.ID, &k.Nama, &k.TanggalMulai, &k.TanggalSelesai, &k.Penyelenggara, &k.Lokasi, &k.Status); err != nil {
			return nil, err
		}
		result = append(result, k)
	}
	return result, rows.Err()
}

// CreateKegiatan menyimpan kegiatan baru. ID boleh dikirim dari klien
// (klien offline membuat ID sendiri); jika kosong server yang membuatkan.
func (s *KegiatanService) CreateKegiatan(k models.Kegiatan) (string, error) {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	if k.Status == "" {
		k.Status = models.StatusToDo
	}
	if k.Status != models.StatusToDo && k.Status != models.StatusOnProgress && k.Status != models.StatusDone {
		return "", fmt.Errorf("status kegiatan tidak valid: %s", k.Status)
	}

	query := `
		INSERT INTO Kegiatan (ID_Kegiatan, Nama, Tanggal_Mulai, Tanggal_Selesai, Penyelenggara, Lokasi, Status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.DB.Exec(query, k.ID, k.Nama, k.TanggalMulai, k.TanggalSelesai, k.Penyelenggara, k.Lokasi, k.Status)
	if err != nil {
		return "", err
	}
	return k.ID, nil
}

// UpdateKegiatan mengganti seluruh record kegiatan berdasarkan ID.
func (s *KegiatanService) UpdateKegiatan(k models.Kegiatan) error {
	query := `
		UPDATE Kegiatan
		SET Nama = ?, Tanggal_Mulai = ?, Tanggal_Selesai = ?, Penyelenggara = ?, Lokasi = ?, Status = ?
		WHERE ID_Kegiatan = ?
	`
	res, err := s.DB.Exec(query, k.Nama, k.TanggalMulai, k.TanggalSelesai, k.Penyelenggara, k.Lokasi, k.Status, k.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("kegiatan tidak ditemukan")
	}
	return nil
}

// DeleteKegiatan menghapus kegiatan berdasarkan ID.
func (s *KegiatanService) DeleteKegiatan(id string) error {
	res, err := s.DB.Exec(`DELETE FROM Kegiatan WHERE ID_Kegiatan = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("kegiatan tidak ditemukan")
	}
	return nil
}
