package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pcc-sumsel/pcc-backend/internal/manajemen/models"
	"github.com/pcc-sumsel/pcc-backend/internal/manajemen/services"
)

type LogController struct {
	Service *services.LogService
}

func NewLogController(service *services.LogService) *LogController {
	return &LogController{Service: service}
}

// ListLog mengembalikan log aktivitas harian petugas.
func (lc *LogController) ListLog(c echo.Context) error {
	list, err := lc.Service.GetListLog()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengambil daftar log: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Daftar log berhasil diambil",
		"data":    list,
	})
}

// CreateLog mencatat aktivitas harian petugas.
func (lc *LogController) CreateLog(c echo.Context) error {
	var req models.LogPetugas
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	if req.IDPetugas == "" || req.IDKegiatan == "" || req.Tanggal == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "id_petugas, id_kegiatan, dan tanggal harus diisi",
			"data":    nil,
		})
	}

	id, err := lc.Service.CreateLog(req)
	if err != nil {
		if err.Error() == "log untuk slot kegiatan ini sudah ada" {
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"status":  http.StatusConflict,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mencatat log: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Log berhasil dicatat",
		"data":    map[string]interface{}{"id": id},
	})
}

// UpdateLog mengganti seluruh record log.
func (lc *LogController) UpdateLog(c echo.Context) error {
	var req models.LogPetugas
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	req.ID = c.Param("id")

	if err := lc.Service.UpdateLog(req); err != nil {
		if err.Error() == "log tidak ditemukan" {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal memperbarui log: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Log berhasil diperbarui",
		"data":    map[string]interface{}{"id": req.ID},
	})
}

// DeleteLog menghapus log berdasarkan ID.
func (lc *LogController) DeleteLog(c echo.Context) error {
	id := c.Param("id")
	if err := lc.Service.DeleteLog(id); err != nil {
		if err.Error() == "log tidak ditemukan" {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menghapus log: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Log berhasil dihapus",
		"data":    nil,
	})
}
