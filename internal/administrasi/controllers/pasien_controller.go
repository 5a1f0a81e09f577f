package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pcc-sumsel/pcc-backend/internal/administrasi/models"
	"github.com/pcc-sumsel/pcc-backend/internal/administrasi/services"
	"github.com/pcc-sumsel/pcc-backend/ws"
)

type PasienController struct {
	Service *services.PendaftaranService
}

func NewPasienController(service *services.PendaftaranService) *PasienController {
	return &PasienController{Service: service}
}

// ListPasien mengembalikan daftar pasien, opsional difilter ?id_kegiatan=.
func (pc *PasienController) ListPasien(c echo.Context) error {
	list, err := pc.Service.GetListPasien(c.QueryParam("id_kegiatan"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengambil daftar pasien: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Daftar pasien berhasil diambil",
		"data":    list,
	})
}

// RegisterPasien mendaftarkan kunjungan pasien baru dan menyiarkan
// pembaruan ke dashboard yang terhubung.
func (pc *PasienController) RegisterPasien(c echo.Context) error {
	var req models.Pasien
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	// Validasi field wajib
	if req.Nama == "" || req.NIK == "" || req.IDKegiatan == "" || req.Kategori == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Nama, nik, id_kegiatan, dan kategori harus diisi",
			"data":    nil,
		})
	}

	id, noRM, err := pc.Service.RegisterPasien(req)
	if err != nil {
		if err.Error() == "kategori tidak valid. Harus 'Berobat' atau 'MCU'" {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"status":  http.StatusBadRequest,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mendaftarkan pasien: " + err.Error(),
			"data":    nil,
		})
	}

	ws.HubInstance.BroadcastPerubahan("pasien_update", map[string]interface{}{
		"id":          id,
		"no_rm":       noRM,
		"id_kegiatan": req.IDKegiatan,
		"nama":        req.Nama,
		"kategori":    req.Kategori,
	})
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Pasien berhasil didaftarkan",
		"data": map[string]interface{}{
			"id":    id,
			"no_rm": noRM,
		},
	})
}

// UpdatePasien mengganti seluruh record pasien.
func (pc *PasienController) UpdatePasien(c echo.Context) error {
	var req models.Pasien
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	req.ID = c.Param("id")

	if err := pc.Service.UpdatePasien(req); err != nil {
		if err.Error() == "pasien tidak ditemukan" {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal memperbarui pasien: " + err.Error(),
			"data":    nil,
		})
	}

	ws.HubInstance.BroadcastPerubahan("pasien_update", map[string]interface{}{"id": req.ID})
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Pasien berhasil diperbarui",
		"data":    map[string]interface{}{"id": req.ID},
	})
}

// DeletePasien menghapus satu kunjungan pasien.
func (pc *PasienController) DeletePasien(c echo.Context) error {
	id := c.Param("id")
	if err := pc.Service.DeletePasien(id); err != nil {
		if err.Error() == "pasien tidak ditemukan" {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menghapus pasien: " + err.Error(),
			"data":    nil,
		})
	}

	ws.HubInstance.BroadcastPerubahan("pasien_update", map[string]interface{}{"id": id})
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Pasien berhasil dihapus",
		"data":    nil,
	})
}
