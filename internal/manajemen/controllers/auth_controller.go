package controllers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pcc-sumsel/pcc-backend/internal/manajemen/services"
	"github.com/pcc-sumsel/pcc-backend/pkg/utils"
)

type AuthController struct {
	Service *services.PetugasService
}

func NewAuthController(service *services.PetugasService) *AuthController {
	return &AuthController{Service: service}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login menangani permintaan login petugas dan mengembalikan token JWT
// bersama profil petugas.
func (ac *AuthController) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Invalid request payload",
			"data":    nil,
		})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  http.StatusBadRequest,
			"message": "Email dan password harus diisi",
			"data":    nil,
		})
	}

	petugas, err := ac.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"status":  http.StatusUnauthorized,
			"message": "Email atau password salah",
			"data":    nil,
		})
	}

	token, err := utils.GenerateJWTToken(petugas.ID, petugas.Email, petugas.Nama, petugas.Role, time.Now().Add(12*time.Hour))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"status":  http.StatusInternalServerError,
			"message": "Gagal membuat token: " + err.Error(),
			"data":    nil,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  http.StatusOK,
		"message": "Login berhasil",
		"data": map[string]interface{}{
			"petugas": petugas,
			"token":   token,
		},
	})
}
