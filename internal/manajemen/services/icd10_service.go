package services

import (
	"database/sql"
	"fmt"

	"github.com/pcc-sumsel/pcc-backend/internal/manajemen/models"
)

type ICD10Service struct {
	DB *sql.DB
}

func NewICD10Service(db *sql.DB) *ICD10Service {
	return &ICD10Service{DB: db}
}

// GetListICD10 mengembalikan seluruh master kode diagnosis.
func (s *ICD10Service) GetListICD10() ([]models.ICD10, error) {
	rows, err := s.DB.Query(`SELECT Kode, Nama FROM ICD10 ORDER BY Kode`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.ICD10
	for rows.Next() {
		var e models.ICD10
		if err := rows.Scan(&e.Kode, &e.Nama); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// CreateICD10 menyisipkan entri dengan deduplikasi per kode: kode yang sudah
// ada dimenangkan oleh entri lama (impor ulang tidak menimpa apa pun).
func (s *ICD10Service) CreateICD10(entries []models.ICD10) (int, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, e := range entries {
		if e.Kode == "" {
			tx.Rollback()
			return 0, fmt.Errorf("kode ICD-10 tidak boleh kosong")
		}
		res, err := tx.Exec(`INSERT IGNORE INTO ICD10 (Kode, Nama) VALUES (?, ?)`, e.Kode, e.Nama)
		if err != nil {
			tx.Rollback()
			return 0, err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			tx.Rollback()
			return 0, err
		}
		inserted += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return inserted, nil
}

// UpdateICD10 mengganti nama entri berdasarkan kode.
func (s *ICD10Service) UpdateICD10(e models.ICD10) error {
	res, err := s.DB.Exec(`UPDATE ICD10 SET Nama = ? WHERE Kode = ?`, e.Nama, e.Kode)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("kode ICD-10 tidak ditemukan")
	}
	return nil
}

// DeleteICD10 menghapus entri berdasarkan kode.
func (s *ICD10Service) DeleteICD10(kode string) error {
	res, err := s.DB.Exec(`DELETE FROM ICD10 WHERE Kode = ?`, kode)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("kode ICD-10 tidak ditemukan")
	}
	return nil
}
