package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pcc-sumsel/pcc-backend/internal/kegiatan/models"
	"github.com/pcc-sumsel/pcc-backend/internal/kegiatan/services"
	"github.com/pcc-sumsel/pcc-backend/ws"
)

type KegiatanController struct {
	Service *services.KegiatanService
}

func NewKegiatanController(service *services.KegiatanService) *KegiatanController {
	return &KegiatanController{Service: service}
}

// ListKegiatan mengembalikan semua kegiatan. Endpoint publik.
func (kc *KegiatanController) ListKegiatan(c echo.Context) error {
	list, err := kc.Service.GetListKegiatan()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengambil daftar kegiatan: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Daftar kegiatan berhasil diambil",
		"data":    list,
	})
}

// CreateKegiatan menambahkan kegiatan baru.
func (kc *KegiatanController) CreateKegiatan(c echo.Context) error {
	var req models.Kegiatan
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	if req.Nama == "" || req.TanggalMulai == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Nama dan tanggal_mulai harus diisi",
			"data":    nil,
		})
	}

	id, err := kc.Service.CreateKegiatan(req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menambahkan kegiatan: " + err.Error(),
			"data":    nil,
		})
	}

	ws.HubInstance.BroadcastPerubahan("kegiatan_update", map[string]interface{}{"id": id})
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Kegiatan berhasil ditambahkan",
		"data":    map[string]interface{}{"id": id},
	})
}

// UpdateKegiatan mengganti seluruh record kegiatan.
func (kc *KegiatanController) UpdateKegiatan(c echo.Context) error {
	var req models.Kegiatan
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	req.ID = c.Param("id")

	if err := kc.Service.UpdateKegiatan(req); err != nil {
		if err.Error() == "kegiatan tidak ditemukan" {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal memperbarui kegiatan: " + err.Error(),
			"data":    nil,
		})
	}

	ws.HubInstance.BroadcastPerubahan("kegiatan_update", map[string]interface{}{"id": req.ID})
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Kegiatan berhasil diperbarui",
		"data":    map[string]interface{}{"id": req.ID},
	})
}

// DeleteKegiatan menghapus kegiatan.
func (kc *KegiatanController) DeleteKegiatan(c echo.Context) error {
	id := c.Param("id")
	if err := kc.Service.DeleteKegiatan(id); err != nil {
		if err.Error() == "kegiatan tidak ditemukan" {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menghapus kegiatan: " + err.Error(),
			"data":    nil,
		})
	}

	ws.HubInstance.BroadcastPerubahan("kegiatan_update", map[string]interface{}{"id": id})
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Kegiatan berhasil dihapus",
		"data":    nil,
	})
}
