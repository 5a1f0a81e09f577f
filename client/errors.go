package client

import "errors"

// ErrKoneksi menandakan server tidak terjangkau, permintaan timeout, atau
// server membalas dengan status gagal. Pemanggil memperlakukan ketiganya
// sama: beralih ke jalur lokal.
var ErrKoneksi = errors.New("server tidak dapat dihubungi")
