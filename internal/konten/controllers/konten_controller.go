package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pcc-sumsel/pcc-backend/internal/konten/models"
	"github.com/pcc-sumsel/pcc-backend/internal/konten/services"
)

type KontenController struct {
	Service *services.KontenService
}

func NewKontenController(service *services.KontenService) *KontenController {
	return &KontenController{Service: service}
}

// ListBerita mengembalikan artikel situs publik. Endpoint publik.
func (kc *KontenController) ListBerita(c echo.Context) error {
	list, err := kc.Service.GetListBerita()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengambil daftar berita: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Daftar berita berhasil diambil",
		"data":    list,
	})
}

// CreateBerita menambahkan artikel baru.
func (kc *KontenController) CreateBerita(c echo.Context) error {
	var req models.Berita
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	if req.Judul == "" || req.Isi == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Judul dan isi harus diisi",
			"data":    nil,
		})
	}

	id, err := kc.Service.CreateBerita(req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menambahkan berita: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Berita berhasil ditambahkan",
		"data":    map[string]interface{}{"id": id},
	})
}

// UpdateBerita mengganti seluruh record artikel.
func (kc *KontenController) UpdateBerita(c echo.Context) error {
	var req models.Berita
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	req.ID = c.Param("id")

	if err := kc.Service.UpdateBerita(req); err != nil {
		if err.Error() == "berita tidak ditemukan" {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal memperbarui berita: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Berita berhasil diperbarui",
		"data":    map[string]interface{}{"id": req.ID},
	})
}

// DeleteBerita menghapus artikel.
func (kc *KontenController) DeleteBerita(c echo.Context) error {
	id := c.Param("id")
	if err := kc.Service.DeleteBerita(id); err != nil {
		if err.Error() == "berita tidak ditemukan" {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menghapus berita: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Berita berhasil dihapus",
		"data":    nil,
	})
}

// ListCarousel mengembalikan slide carousel halaman depan. Endpoint publik.
func (kc *KontenController) ListCarousel(c echo.Context) error {
	list, err := kc.Service.GetListCarousel()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal mengambil carousel: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Carousel berhasil diambil",
		"data":    list,
	})
}

// CreateCarousel menambahkan slide baru.
func (kc *KontenController) CreateCarousel(c echo.Context) error {
	var req models.CarouselItem
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	if req.Gambar == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Gambar harus diisi",
			"data":    nil,
		})
	}

	id, err := kc.Service.CreateCarousel(req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menambahkan slide: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Slide berhasil ditambahkan",
		"data":    map[string]interface{}{"id": id},
	})
}

// UpdateCarousel mengganti seluruh record slide.
func (kc *KontenController) UpdateCarousel(c echo.Context) error {
	var req models.CarouselItem
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload: " + err.Error(),
			"data":    nil,
		})
	}
	req.ID = c.Param("id")

	if err := kc.Service.UpdateCarousel(req); err != nil {
		if err.Error() == "slide carousel tidak ditemukan" {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal memperbarui slide: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Slide berhasil diperbarui",
		"data":    map[string]interface{}{"id": req.ID},
	})
}

// DeleteCarousel menghapus slide.
func (kc *KontenController) DeleteCarousel(c echo.Context) error {
	id := c.Param("id")
	if err := kc.Service.DeleteCarousel(id); err != nil {
		if err.Error() == "slide carousel tidak ditemukan" {
			return c.JSON(http.StatusNotFound, map[string]interface{}{
				"status":  http.StatusNotFound,
				"message": err.Error(),
				"data":    nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal menghapus slide: " + err.Error(),
			"data":    nil,
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Slide berhasil dihapus",
		"data":    nil,
	})
}
