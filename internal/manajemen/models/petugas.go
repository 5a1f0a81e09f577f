package models

// Role petugas.
const (
	RoleAdmin   = "admin"
	RolePetugas = "petugas"
)

// Petugas mewakili akun petugas lapangan. Email dipakai sebagai kunci login.
// Password disimpan apa adanya agar pencocokan login offline di sisi klien
// tetap bisa dilakukan terhadap salinan lokal (lihat catatan di DESIGN.md).
type Petugas struct {
	ID       string `json:"id" db:"ID_Petugas"`
	Email    string `json:"email" db:"Email"`
	Nama     string `json:"nama" db:"Nama"`
	IDTim    string `json:"id_tim,omitempty" db:"ID_Tim"`
	Password string `json:"password" db:"Password"`
	Role     string `json:"role" db:"Role"`
}
