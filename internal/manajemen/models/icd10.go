package models

// ICD10 adalah entri master kode diagnosis. Kunci entitas adalah kode,
// bukan id; update dan delete beroperasi pada kode.
type ICD10 struct {
	Kode string `json:"kode" db:"Kode"`
	Nama string `json:"nama" db:"Nama"`
}
