package models

// Kategori pelayanan pasien.
const (
	KategoriBerobat = "Berobat"
	KategoriMCU     = "MCU"
)

// Pasien mewakili satu kunjungan pasien yang terikat pada satu kegiatan.
// No_RM stabil per individu dan dipakai ulang antar kunjungan.
type Pasien struct {
	ID           string `json:"id" db:"ID_Pasien"`
	NoRM         string `json:"no_rm" db:"No_RM"`
	IDKegiatan   string `json:"id_kegiatan" db:"ID_Kegiatan"`
	Nama         string `json:"nama" db:"Nama"`
	NIK          string `json:"nik" db:"NIK"`
	TempatLahir  string `json:"tempat_lahir,omitempty" db:"Tempat_Lahir"`
	TanggalLahir string `json:"tanggal_lahir,omitempty" db:"Tanggal_Lahir"`
	JenisKelamin string `json:"jenis_kelamin,omitempty" db:"Jenis_Kelamin"`
	Alamat       string `json:"alamat,omitempty" db:"Alamat"`
	NoTelp       string `json:"no_telp,omitempty" db:"No_Telp"`
	Pekerjaan    string `json:"pekerjaan,omitempty" db:"Pekerjaan"`

	// Tanda vital diisi saat pemeriksaan awal.
	TekananDarah string `json:"tekanan_darah,omitempty" db:"Tekanan_Darah"`
	Nadi         string `json:"nadi,omitempty" db:"Nadi"`
	Suhu         string `json:"suhu,omitempty" db:"Suhu"`
	Pernapasan   string `json:"pernapasan,omitempty" db:"Pernapasan"`
	BeratBadan   string `json:"berat_badan,omitempty" db:"Berat_Badan"`
	TinggiBadan  string `json:"tinggi_badan,omitempty" db:"Tinggi_Badan"`

	Kategori string `json:"kategori" db:"Kategori"`

	// Sub-rekam klinis: terisi salah satu sesuai kategori.
	Kunjungan *Kunjungan `json:"kunjungan,omitempty"`
	MCU       *HasilMCU  `json:"mcu,omitempty"`
}

// Kunjungan memuat catatan klinis kunjungan berobat umum.
type Kunjungan struct {
	Anamnesis        string `json:"anamnesis,omitempty" db:"Anamnesis"`
	PemeriksaanFisik string `json:"pemeriksaan_fisik,omitempty" db:"Pemeriksaan_Fisik"`
	KodeICD10        string `json:"kode_icd10,omitempty" db:"Kode_ICD10"`
	Diagnosis        string `json:"diagnosis,omitempty" db:"Diagnosis"`
	Tindakan         string `json:"tindakan,omitempty" db:"Tindakan"`
	Obat             string `json:"obat,omitempty" db:"Obat"`
}

// HasilMCU memuat hasil formulir medical check-up.
type HasilMCU struct {
	GulaDarah   string `json:"gula_darah,omitempty" db:"Gula_Darah"`
	Kolesterol  string `json:"kolesterol,omitempty" db:"Kolesterol"`
	AsamUrat    string `json:"asam_urat,omitempty" db:"Asam_Urat"`
	Hemoglobin  string `json:"hemoglobin,omitempty" db:"Hemoglobin"`
	Kesimpulan  string `json:"kesimpulan,omitempty" db:"Kesimpulan"`
	Rekomendasi string `json:"rekomendasi,omitempty" db:"Rekomendasi"`
}
