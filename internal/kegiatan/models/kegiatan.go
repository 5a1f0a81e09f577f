package models

// Status kegiatan mengikuti papan kerja tim lapangan.
const (
	StatusToDo       = "To Do"
	StatusOnProgress = "On Progress"
	StatusDone       = "Done"
)

// Kegiatan mewakili satu kegiatan pelayanan (posko, bakti sosial, MCU massal).
type Kegiatan struct {
	ID             string `json:"id" db:"ID_Kegiatan"`
	Nama           string `json:"nama" db:"Nama"`
	TanggalMulai   string `json:"tanggal_mulai" db:"Tanggal_Mulai"`
	TanggalSelesai string `json:"tanggal_selesai" db:"Tanggal_Selesai"`
	Penyelenggara  string `json:"penyelenggara" db:"Penyelenggara"`
	Lokasi         string `json:"lokasi" db:"Lokasi"`
	Status         string `json:"status" db:"Status"`
}
