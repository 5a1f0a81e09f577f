package models

// Berita mewakili satu artikel pada situs publik.
type Berita struct {
	ID      string `json:"id" db:"ID_Berita"`
	Judul   string `json:"judul" db:"Judul"`
	Isi     string `json:"isi" db:"Isi"`
	Gambar  string `json:"gambar,omitempty" db:"Gambar"`
	Tanggal string `json:"tanggal" db:"Tanggal"`
}

// CarouselItem mewakili satu slide carousel di halaman depan.
type CarouselItem struct {
	ID     string `json:"id" db:"ID_Carousel"`
	Gambar string `json:"gambar" db:"Gambar"`
	Judul  string `json:"judul,omitempty" db:"Judul"`
	Urutan int    `json:"urutan" db:"Urutan"`
}
