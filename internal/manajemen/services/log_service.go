package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/pcc-sumsel/pcc-backend/internal/manajemen/models"
)

type LogService struct {
	DB *sql.DB
}

func NewLogService(db *sql.DB) *LogService {
	return &LogService{DB: db}
}

// GetListLog mengembalikan log aktivitas, terbaru lebih dulu.
func (s *LogService) GetListLog() ([]models.LogPetugas, error) {
	rows, err := s.DB.Query(`SELECT ID_Log, ID_Petugas, ID_Kegiatan, Tanggal, Uraian FROM Log_Petugas ORDER BY Tanggal DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.LogPetugas
	for rows.Next() {
		var l models.LogPetugas
		if err := rows.Scan(&l.ID, &l.IDPetugas, &l.IDKegiatan, &l.Tanggal, &l.Uraian); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

// CreateLog mencatat aktivitas harian petugas. Satu petugas hanya punya satu
// log per slot kegiatan per tanggal.
func (s *LogService) CreateLog(l models.LogPetugas) (string, error) {
	var existingID string
	err := s.DB.QueryRow(
		`SELECT ID_Log FROM Log_Petugas WHERE ID_Petugas = ? AND ID_Kegiatan = ? AND Tanggal = ?`,
		l.IDPetugas, l.IDKegiatan, l.Tanggal,
	).Scan(&existingID)
	if err == nil {
		return "", fmt.Errorf("log untuk slot kegiatan ini sudah ada")
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	_, err = s.DB.Exec(
		`INSERT INTO Log_Petugas (ID_Log, ID_Petugas, ID_Kegiatan, Tanggal, Uraian) VALUES (?, ?, ?, ?, ?)`,
		l.ID, l.IDPetugas, l.IDKegiatan, l.Tanggal, l.Uraian,
	)
	if err != nil {
		return "", err
	}
	return l.ID, nil
}

// UpdateLog mengganti seluruh record log berdasarkan ID.
func (s *LogService) UpdateLog(l models.LogPetugas) error {
	res, err := s.DB.Exec(
		`UPDATE Log_Petugas SET ID_Petugas = ?, ID_Kegiatan = ?, Tanggal = ?, Uraian = ? WHERE ID_Log = ?`,
		l.IDPetugas, l.IDKegiatan, l.Tanggal, l.Uraian, l.ID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("log tidak ditemukan")
	}
	return nil
}

// DeleteLog menghapus log berdasarkan ID.
func (s *LogService) DeleteLog(id string) error {
	res, err := s.DB.Exec(`DELETE FROM Log_Petugas WHERE ID_Log = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("log tidak ditemukan")
	}
	return nil
}
