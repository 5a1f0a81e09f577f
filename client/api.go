package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	manajemenModels "github.com/pcc-sumsel/pcc-backend/internal/manajemen/models"
)

// probeTimeout membatasi probe konektivitas saat aplikasi start.
const probeTimeout = 2 * time.Second

// Remote membungkus panggilan HTTP ke REST API. Setiap panggilan dicoba
// tepat satu kali: tidak ada retry maupun backoff — kegagalan diserahkan ke
// synchronizer, yang beralih ke cache lokal alih-alih mengulang permintaan.
type Remote struct {
	http   *resty.Client
	logger *zap.Logger

	mu    sync.RWMutex
	token string
}

func NewRemote(baseURL string, logger *zap.Logger) *Remote {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/") + "/api").
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Remote{
		http:   httpClient,
		logger: logger,
	}
}

// SetToken menetapkan kredensial bearer untuk endpoint terproteksi.
func (r *Remote) SetToken(token string) {
	r.mu.Lock()
	r.token = token
	r.mu.Unlock()
}

func (r *Remote) getToken() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.token
}

// envelope adalah amplop respons standar server: {status, message, data}.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Ping melakukan probe konektivitas ringan dengan timeout 2 detik
// terhadap endpoint publik.
func (r *Remote) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	resp, err := r.http.R().SetContext(ctx).Get("/activities")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKoneksi, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: status %d", ErrKoneksi, resp.StatusCode())
	}
	return nil
}

func (r *Remote) request(ctx context.Context, protected bool) *resty.Request {
	req := r.http.R().SetContext(ctx)
	if protected {
		req.SetHeader("Authorization", "Bearer "+r.getToken())
	}
	return req
}

// List mengambil seluruh isi satu koleksi dan mengisi out dari field data.
func (r *Remote) List(ctx context.Context, path string, protected bool, out interface{}) error {
	resp, err := r.request(ctx, protected).Get(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKoneksi, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: status %d", ErrKoneksi, resp.StatusCode())
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("%w: respons tidak valid: %v", ErrKoneksi, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: respons tidak valid: %v", ErrKoneksi, err)
	}
	return nil
}

// Create mengirim entitas utuh sebagai body POST.
func (r *Remote) Create(ctx context.Context, path string, protected bool, item interface{}) error {
	resp, err := r.request(ctx, protected).SetBody(item).Post(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKoneksi, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: status %d", ErrKoneksi, resp.StatusCode())
	}
	return nil
}

// Replace mengirim entitas utuh sebagai body PUT; kunci entitas ada di path.
func (r *Remote) Replace(ctx context.Context, path, key string, protected bool, item interface{}) error {
	resp, err := r.request(ctx, protected).SetBody(item).Put(path + "/" + url.PathEscape(key))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKoneksi, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: status %d", ErrKoneksi, resp.StatusCode())
	}
	return nil
}

// Remove menghapus satu entitas; hanya kunci yang dikirim, tertanam di path.
func (r *Remote) Remove(ctx context.Context, path, key string, protected bool) error {
	resp, err := r.request(ctx, protected).Delete(path + "/" + url.PathEscape(key))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrKoneksi, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: status %d", ErrKoneksi, resp.StatusCode())
	}
	return nil
}

type loginPayload struct {
	Petugas *manajemenModels.Petugas `json:"petugas"`
	Token   string                   `json:"token"`
}

// Login mengautentikasi ke server dan mengembalikan profil petugas beserta
// token bearer. Kegagalan jaringan dan kredensial yang ditolak server
// sama-sama kembali sebagai error di sini.
func (r *Remote) Login(ctx context.Context, email, password string) (*manajemenModels.Petugas, string, error) {
	body := map[string]string{"email": email, "password": password}
	resp, err := r.http.R().SetContext(ctx).SetBody(body).Post("/auth/login")
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrKoneksi, err)
	}
	if resp.IsError() {
		return nil, "", fmt.Errorf("%w: status %d", ErrKoneksi, resp.StatusCode())
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, "", fmt.Errorf("%w: respons tidak valid: %v", ErrKoneksi, err)
	}
	var payload loginPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, "", fmt.Errorf("%w: respons tidak valid: %v", ErrKoneksi, err)
	}
	if payload.Petugas == nil || payload.Token == "" {
		return nil, "", fmt.Errorf("%w: respons login tidak lengkap", ErrKoneksi)
	}
	return payload.Petugas, payload.Token, nil
}
