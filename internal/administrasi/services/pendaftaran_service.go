package services

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/pcc-sumsel/pcc-backend/internal/administrasi/models"
)

type PendaftaranService struct {
	DB *sql.DB
}

func NewPendaftaranService(db *sql.DB) *PendaftaranService {
	return &PendaftaranService{DB: db}
}

// nextNoRM menentukan nomor rekam medis untuk pendaftaran baru.
// NIK yang sudah pernah terdaftar memakai ulang No_RM lamanya.
func (s *PendaftaranService) nextNoRM(nik string) (string, error) {
	var existing string
	err := s.DB.QueryRow(`SELECT No_RM FROM Pasien WHERE NIK = ? ORDER BY No_RM LIMIT 1`, nik).Scan(&existing)
	if err == nil {
		return existing, nil
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	var jumlah int
	if err := s.DB.QueryRow(`SELECT COUNT(DISTINCT No_RM) FROM Pasien`).Scan(&jumlah); err != nil {
		return "", err
	}
	return fmt.Sprintf("RM-%06d", jumlah+1), nil
}

// RegisterPasien mendaftarkan satu kunjungan pasien beserta sub-rekam klinisnya.
func (s *PendaftaranService) RegisterPasien(p models.Pasien) (string, string, error) {
	if p.Kategori != models.KategoriBerobat && p.Kategori != models.KategoriMCU {
		return "", "", fmt.Errorf("kategori tidak valid. Harus 'Berobat' atau 'MCU'")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	noRM := p.NoRM
	if noRM == "" {
		var err error
		noRM, err = s.nextNoRM(p.NIK)
		if err != nil {
			return "", "", err
		}
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return "", "", err
	}

	queryPasien := `
		INSERT INTO Pasien
			(ID_Pasien, No_RM, ID_Kegiatan, Nama, NIK, Tempat_Lahir, Tanggal_Lahir, Jenis_Kelamin,
			 Alamat, No_Telp, Pekerjaan, Tekanan_Darah, Nadi, Suhu, Pernapasan, Berat_Badan, Tinggi_Badan, Kategori)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	if _, err := tx.Exec(queryPasien,
		p.ID, noRM, p.IDKegiatan, p.Nama, p.NIK, p.TempatLahir, p.TanggalLahir, p.JenisKelamin,
		p.Alamat, p.NoTelp, p.Pekerjaan, p.TekananDarah, p.Nadi, p.Suhu, p.Pernapasan, p.BeratBadan, p.TinggiBadan, p.Kategori,
	); err != nil {
		tx.Rollback()
		return "", "", err
	}

	if err := insertSubRekam(tx, p); err != nil {
		tx.Rollback()
		return "", "", err
	}

	if err := tx.Commit(); err != nil {
		return "", "", err
	}
	return p.ID, noRM, nil
}

func insertSubRekam(tx *sql.Tx, p models.Pasien) error {
	if p.Kunjungan != nil {
		_, err := tx.Exec(
			`INSERT INTO Kunjungan (ID_Pasien, Anamnesis, Pemeriksaan_Fisik, Kode_ICD10, Diagnosis, Tindakan, Obat)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Kunjungan.Anamnesis, p.Kunjungan.PemeriksaanFisik, p.Kunjungan.KodeICD10,
			p.Kunjungan.Diagnosis, p.Kunjungan.Tindakan, p.Kunjungan.Obat,
		)
		return err
	}
	if p.MCU != nil {
		_, err := tx.Exec(
			`INSERT INTO MCU (ID_Pasien, Gula_Darah, Kolesterol, Asam_Urat, Hemoglobin, Kesimpulan, Rekomendasi)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.MCU.GulaDarah, p.MCU.Kolesterol, p.MCU.AsamUrat, p.MCU.Hemoglobin,
			p.MCU.Kesimpulan, p.MCU.Rekomendasi,
		)
		return err
	}
	return nil
}

// GetListPasien mengembalikan daftar pasien, opsional difilter per kegiatan.
func (s *PendaftaranService) GetListPasien(idKegiatan string) ([]models.Pasien, error) {
	query := `
		SELECT p.ID_Pasien, p.No_RM, p.ID_Kegiatan, p.Nama, p.NIK, p.Tempat_Lahir, p.Tanggal_Lahir,
			p.Jenis_Kelamin, p.Alamat, p.No_Telp, p.Pekerjaan, p.Tekanan_Darah, p.Nadi, p.Suhu,
			p.Pernapasan, p.Berat_Badan, p.Tinggi_Badan, p.Kategori,
			k.Anamnesis, k.Pemeriksaan_Fisik, k.Kode_ICD10, k.Diagnosis, k.Tindakan, k.Obat,
			m.Gula_Darah, m.Kolesterol, m.Asam_Urat, m.Hemoglobin, m.Kesimpulan, m.Rekomendasi
		FROM Pasien p
		LEFT JOIN Kunjungan k ON p.ID_Pasien = k.ID_Pasien
		LEFT JOIN MCU m ON p.ID_Pasien = m.ID_Pasien
	`
	var args []interface{}
	if idKegiatan != "" {
		query += ` WHERE p.ID_Kegiatan = ?`
		args = append(args, idKegiatan)
	}
	query += ` ORDER BY p.No_RM`

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.Pasien
	for rows.Next() {
		var p models.Pasien
		var kj [6]sql.NullString
		var mc [6]sql.NullString
		if err := rows.Scan(
			&p.ID, &p.NoRM, &p.IDKegiatan, &p.Nama, &p.NIK, &p.TempatLahir, &p.TanggalLahir,
			&p.JenisKelamin, &p.Alamat, &p.NoTelp, &p.Pekerjaan, &p.TekananDarah, &p.Nadi, &p.Suhu,
			&p.Pernapasan, &p.BeratBadan, &p.TinggiBadan, &p.Kategori,
			&kj[0], &kj[1], &kj[2], &kj[3], &kj[4], &kj[5],
			&mc[0], &mc[1], &mc[2], &mc[3], &mc[4], &mc[5],
		); err != nil {
			return nil, err
		}
		if p.Kategori == models.KategoriBerobat && kj[0].Valid {
			p.Kunjungan = &models.Kunjungan{
				Anamnesis:        kj[0].String,
				PemeriksaanFisik: kj[1].String,
				KodeICD10:        kj[2].String,
				Diagnosis:        kj[3].String,
				Tindakan:         kj[4].String,
				Obat:             kj[5].String,
			}
		}
		if p.Kategori == models.KategoriMCU && mc[0].Valid {
			p.MCU = &models.HasilMCU{
				GulaDarah:   mc[0].String,
				Kolesterol:  mc[1].String,
				AsamUrat:    mc[2].String,
				Hemoglobin:  mc[3].String,
				Kesimpulan:  mc[4].String,
				Rekomendasi: mc[5].String,
			}
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// UpdatePasien mengganti seluruh record pasien (termasuk sub-rekam klinis) berdasarkan ID.
func (s *PendaftaranService) UpdatePasien(p models.Pasien) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}

	query := `
		UPDATE Pasien
		SET No_RM = ?, ID_Kegiatan = ?, Nama = ?, NIK = ?, Tempat_Lahir = ?, Tanggal_Lahir = ?,
			Jenis_Kelamin = ?, Alamat = ?, No_Telp = ?, Pekerjaan = ?, Tekanan_Darah = ?, Nadi = ?,
			Suhu = ?, Pernapasan = ?, Berat_Badan = ?, Tinggi_Badan = ?, Kategori = ?
		WHERE ID_Pasien = ?
	`
	res, err := tx.Exec(query,
		p.NoRM, p.IDKegiatan, p.Nama, p.NIK, p.TempatLahir, p.TanggalLahir,
		p.JenisKelamin, p.Alamat, p.NoTelp, p.Pekerjaan, p.TekananDarah, p.Nadi,
		p.Suhu, p.Pernapasan, p.BeratBadan, p.TinggiBadan, p.Kategori, p.ID,
	)
	if err != nil {
		tx.Rollback()
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if affected == 0 {
		tx.Rollback()
		return fmt.Errorf("pasien tidak ditemukan")
	}

	// Sub-rekam diganti utuh: hapus lalu sisipkan ulang
	if _, err := tx.Exec(`DELETE FROM Kunjungan WHERE ID_Pasien = ?`, p.ID); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec(`DELETE FROM MCU WHERE ID_Pasien = ?`, p.ID); err != nil {
		tx.Rollback()
		return err
	}
	if err := insertSubRekam(tx, p); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// DeletePasien menghapus satu kunjungan pasien beserta sub-rekamnya.
func (s *PendaftaranService) DeletePasien(id string) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM Kunjungan WHERE ID_Pasien = ?`, id); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.Exec(`DELETE FROM MCU WHERE ID_Pasien = ?`, id); err != nil {
		tx.Rollback()
		return err
	}
	res, err := tx.Exec(`DELETE FROM Pasien WHERE ID_Pasien = ?`, id)
	if err != nil {
		tx.Rollback()
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return err
	}
	if affected == 0 {
		tx.Rollback()
		return fmt.Errorf("pasien tidak ditemukan")
	}
	return tx.Commit()
}
