package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/pcc-sumsel/pcc-backend/config"
)

// Claims memuat identitas petugas yang sedang login.
type Claims struct {
	IDPetugas string `json:"id_petugas"`
	Email     string `json:"email"`
	Nama      string `json:"nama"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWTToken membuat token JWT untuk petugas dengan exp sesuai parameter.
func GenerateJWTToken(idPetugas, email, nama, role string, exp time.Time) (string, error) {
	jwtKey := []byte(config.LoadConfig().JWTSecret)
	if len(jwtKey) == 0 {
		return "", fmt.Errorf("JWT secret key is missing")
	}

	claims := Claims{
		IDPetugas: idPetugas,
		Email:     email,
		Nama:      nama,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ValidateJWTToken memvalidasi token JWT dan mengembalikan klaimnya.
func ValidateJWTToken(tokenString string) (*Claims, error) {
	jwtKey := []byte(config.LoadConfig().JWTSecret)
	if len(jwtKey) == 0 {
		return nil, fmt.Errorf("JWT secret key is missing")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Pastikan metode signing benar
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
