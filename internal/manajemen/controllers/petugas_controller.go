package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pcc-sumsel/pcc-backend/internal/manajemen/models"
	"github.com/pcc-sumsel/pcc-backend/internal/manajemen/services"
)

type PetugasController struct {
	Service *services.PetugasService
}

func NewPetugasController(service *services.PetugasService) *PetugasController {
	return &PetugasController{Service: service}
}

// ListPetugas mengembalikan semua akun petugas.
func (pc *PetugasController) ListPetugas(c echo.Context) error {
	list, err := pc.Service.GetListPetugas()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengambil daftar petugas: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Daftar petugas berhasil diambil",
		"data":    list,
	})
}

// CreatePetugas menambahkan akun petugas baru.
func (pc *PetugasController) CreatePetugas(c echo.Context) error {
	var req models.Petugas
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	if req.Email == "" || req.Nama == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Email, nama, dan password harus diisi",
			"data":    nil,
		})
	}

	id, err := pc.Service.CreatePetugas(req)
	if err != nil {
		if err.Error() == "email sudah terdaftar" {
			return c.JSON(http.StatusConflict, map[string]interface{}{
				"status":  http.StatusConflict,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menambahkan petugas: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Petugas berhasil ditambahkan",
		"data":    map[string]interface{}{"id": id},
	})
}

// UpdatePetugas mengganti seluruh record petugas.
func (pc *PetugasController) UpdatePetugas(c echo.Context) error {
	var req models.Petugas
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	req.ID = c.Param("id")

	if err := pc.Service.UpdatePetugas(req); err != nil {
		if err.Error() == "petugas tidak ditemukan" {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal memperbarui petugas: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Petugas berhasil diperbarui",
		"data":    map[string]interface{}{"id": req.ID},
	})
}

// DeletePetugas menghapus akun petugas.
func (pc *PetugasController) DeletePetugas(c echo.Context) error {
	id := c.Param("id")
	if err := pc.Service.DeletePetugas(id); err != nil {
		if err.Error() == "petugas tidak ditemukan" {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menghapus petugas: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Petugas berhasil dihapus",
		"data":    nil,
	})
}
