package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcc-sumsel/pcc-backend/internal/administrasi/services"
)

func setupPasienController(t *testing.T) (sqlmock.Sqlmock, *PasienController) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return mock, NewPasienController(services.NewPendaftaranService(db))
}

func kontekJSON(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func dekodeAmplop(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var amplop map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &amplop))
	return amplop
}

func TestRegisterPasien_Berhasil(t *testing.T) {
	mock, pc := setupPasienController(t)

	mock.ExpectQuery(`SELECT No_RM FROM Pasien WHERE NIK`).
		WithArgs("1671010101900001").
		WillReturnRows(sqlmock.NewRows([]string{"No_RM"}).AddRow("RM-000007"))
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO Pasien`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO Kunjungan`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	c, rec := kontekJSON(t, http.MethodPost, "/api/patients", `{
		"nama": "Budi Santoso",
		"nik": "1671010101900001",
		"id_kegiatan": "k1",
		"kategori": "Berobat",
		"kunjungan": {"anamnesis": "Demam 3 hari", "diagnosis": "Demam tifoid"}
	}`)
	require.NoError(t, pc.RegisterPasien(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	amplop := dekodeAmplop(t, rec)
	assert.EqualValues(t, http.StatusOK, amplop["status"])
	assert.Equal(t, "Pasien berhasil didaftarkan", amplop["message"])

	data, ok := amplop["data"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "RM-000007", data["no_rm"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterPasien_FieldWajibKosong(t *testing.T) {
	_, pc := setupPasienController(t)

	c, rec := kontekJSON(t, http.MethodPost, "/api/patients", `{"nama":"Budi"}`)
	require.NoError(t, pc.RegisterPasien(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	amplop := dekodeAmplop(t, rec)
	assert.EqualValues(t, http.StatusBadRequest, amplop["status"])
}

func TestRegisterPasien_KategoriTidakValid(t *testing.T) {
	_, pc := setupPasienController(t)

	c, rec := kontekJSON(t, http.MethodPost, "/api/patients", `{
		"nama": "Budi",
		"nik": "1671010101900001",
		"id_kegiatan": "k1",
		"kategori": "Rawat Inap"
	}`)
	require.NoError(t, pc.RegisterPasien(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	amplop := dekodeAmplop(t, rec)
	assert.EqualValues(t, http.StatusBadRequest, amplop["status"])
	assert.Contains(t, amplop["message"], "kategori tidak valid")
}

func TestUpdatePasien_TidakDitemukan(t *testing.T) {
	mock, pc := setupPasienController(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE Pasien`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	c, rec := kontekJSON(t, http.MethodPut, "/api/patients/tidak-ada", `{"kategori":"Berobat"}`)
	c.SetParamNames("id")
	c.SetParamValues("tidak-ada")
	require.NoError(t, pc.UpdatePasien(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	amplop := dekodeAmplop(t, rec)
	assert.EqualValues(t, http.StatusNotFound, amplop["status"])
	assert.Equal(t, "pasien tidak ditemukan", amplop["message"])
}
