package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pcc-sumsel/pcc-backend/internal/manajemen/models"
	"github.com/pcc-sumsel/pcc-backend/internal/manajemen/services"
)

type ICD10Controller struct {
	Service *services.ICD10Service
}

func NewICD10Controller(service *services.ICD10Service) *ICD10Controller {
	return &ICD10Controller{Service: service}
}

// ListICD10 mengembalikan seluruh master kode diagnosis.
func (ic *ICD10Controller) ListICD10(c echo.Context) error {
	list, err := ic.Service.GetListICD10()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengambil daftar ICD-10: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Daftar ICD-10 berhasil diambil",
		"data":    list,
	})
}

// CreateICD10 menerima satu entri atau array entri (impor massal dari
// spreadsheet yang sudah diparse di sisi klien). Kode yang sudah ada
// dilewati, tidak ditimpa.
func (ic *ICD10Controller) CreateICD10(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}

	var entries []models.ICD10
	if err := json.Unmarshal(body, &entries); err != nil {
		var single models.ICD10
		if err := json.Unmarshal(body, &single); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"status":  http.StatusBadRequest,
				"message": "Invalid request payload: " + err.Error(),
				"data":    nil,
			})
		}
		entries = []models.ICD10{single}
	}
	if len(entries) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Tidak ada entri ICD-10 yang dikirim",
			"data":    nil,
		})
	}

	inserted, err := ic.Service.CreateICD10(entries)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menyimpan entri ICD-10: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Entri ICD-10 berhasil disimpan",
		"data": map[string]interface{}{
			"diterima":  len(entries),
			"tersimpan": inserted,
		},
	})
}

// UpdateICD10 mengganti nama entri berdasarkan kode di path.
func (ic *ICD10Controller) UpdateICD10(c echo.Context) error {
	var req models.ICD10
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	req.Kode = c.Param("kode")

	if err := ic.Service.UpdateICD10(req); err != nil {
		if err.Error() == "kode ICD-10 tidak ditemukan" {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal memperbarui entri ICD-10: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Entri ICD-10 berhasil diperbarui",
		"data":    map[string]interface{}{"kode": req.Kode},
	})
}

// DeleteICD10 menghapus entri berdasarkan kode di path.
func (ic *ICD10Controller) DeleteICD10(c echo.Context) error {
	kode := c.Param("kode")
	if err := ic.Service.DeleteICD10(kode); err != nil {
		if err.Error() == "kode ICD-10 tidak ditemukan" {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menghapus entri ICD-10: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Entri ICD-10 berhasil dihapus",
		"data":    nil,
	})
}
