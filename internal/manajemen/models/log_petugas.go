package models

// LogPetugas mencatat aktivitas harian satu petugas pada satu slot kegiatan.
type LogPetugas struct {
	ID         string `json:"id" db:"ID_Log"`
	IDPetugas  string `json:"id_petugas" db:"ID_Petugas"`
	IDKegiatan string `json:"id_kegiatan" db:"ID_Kegiatan"`
	Tanggal    string `json:"tanggal" db:"Tanggal"`
	Uraian     string `json:"uraian" db:"Uraian"`
}
