package ws

// Hub bertanggung jawab untuk:
// - menyimpan koneksi dashboard yang terhubung,
// - menerima notifikasi perubahan data dari controller,
// - melakukan broadcast notifikasi ke seluruh client.

import (
	"encoding/json"
	"log"

	"github.com/gorilla/websocket"
)

var HubInstance = NewHub()

func init() {
	go HubInstance.Run()
}

// Client mewakili satu koneksi WebSocket dashboard.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub mengelola semua koneksi client.
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
			}
		case message := <-h.Broadcast:
			for client := range h.Clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.Clients, client)
				}
			}
		}
	}
}

// BroadcastPerubahan mengirim notifikasi bahwa satu koleksi berubah, supaya
// dashboard yang terbuka bisa memuat ulang datanya.
func (h *Hub) BroadcastPerubahan(jenis string, data interface{}) {
	msg, err := json.Marshal(map[string]interface{}{
		"type": jenis,
		"data": data,
	})
	if err != nil {
		log.Printf("Gagal menyusun pesan broadcast: %v", err)
		return
	}
	h.Broadcast <- msg
}
