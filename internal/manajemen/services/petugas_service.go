package services

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pcc-sumsel/pcc-backend/internal/manajemen/models"
)

type PetugasService struct {
	DB *sql.DB
}

func NewPetugasService(db *sql.DB) *PetugasService {
	return &PetugasService{DB: db}
}

// Authenticate memverifikasi email dan password petugas.
// Akun hasil seeding lama menyimpan hash bcrypt (prefix $2), akun yang dibuat
// lewat API menyimpan password apa adanya supaya salinan lokal klien tetap
// bisa dipakai untuk login offline.
func (s *PetugasService) Authenticate(email, password string) (*models.Petugas, error) {
	var p models.Petugas
	query := `
		SELECT ID_Petugas, Email, Nama, ID_Tim, Password, Role
		FROM Petugas WHERE Email = ?
	`
	err := s.DB.QueryRow(query, email).Scan(&p.ID, &p.Email, &p.Nama, &p.IDTim, &p.Password, &p.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("email atau password salah")
		}
		return nil, err
	}

	if strings.HasPrefix(p.Password, "$2") {
		if err := bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(password)); err != nil {
			return nil, fmt.Errorf("email atau password salah")
		}
	} else if p.Password != password {
		return nil, fmt.Errorf("email atau password salah")
	}
	return &p, nil
}

// GetListPetugas mengembalikan semua petugas.
func (s *PetugasService) GetListPetugas() ([]models.Petugas, error) {
	rows, err := s.DB.Query(`SELECT ID_Petugas, Email, Nama, ID_Tim, Password, Role FROM Petugas ORDER BY Nama`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.Petugas
	for rows.Next() {
		var p models.Petugas
		if err := rows.Scan(&p.ID, &p.Email, &p.Nama, &p.IDTim, &p.Password, &p.Role); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// CreatePetugas menambahkan akun petugas baru. Email harus unik.
func (s *PetugasService) CreatePetugas(p models.Petugas) (string, error) {
	var existingID string
	err := s.DB.QueryRow(`SELECT ID_Petugas FROM Petugas WHERE Email = ?`, p.Email).Scan(&existingID)
	if err == nil {
		return "", fmt.Errorf("email sudah terdaftar")
	}
	if err != sql.ErrNoRows {
		return "", err
	}

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Role == "" {
		p.Role = models.RolePetugas
	}
	if p.Role != models.RoleAdmin && p.Role != models.RolePetugas {
		return "", fmt.Errorf("role tidak valid: %s", p.Role)
	}

	_, err = s.DB.Exec(
		`INSERT INTO Petugas (ID_Petugas, Email, Nama, ID_Tim, Password, Role) VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Email, p.Nama, p.IDTim, p.Password, p.Role,
	)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

// UpdatePetugas mengganti seluruh record petugas berdasarkan ID.
func (s *PetugasService) UpdatePetugas(p models.Petugas) error {
	res, err := s.DB.Exec(
		`UPDATE Petugas SET Email = ?, Nama = ?, ID_Tim = ?, Password = ?, Role = ? WHERE ID_Petugas = ?`,
		p.Email, p.Nama, p.IDTim, p.Password, p.Role, p.ID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("petugas tidak ditemukan")
	}
	return nil
}

// DeletePetugas menghapus akun petugas berdasarkan ID.
func (s *PetugasService) DeletePetugas(id string) error {
	res, err := s.DB.Exec(`DELETE FROM Petugas WHERE ID_Petugas = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("petugas tidak ditemukan")
	}
	return nil
}
