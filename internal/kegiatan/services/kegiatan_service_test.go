package services

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcc-sumsel/pcc-backend/internal/kegiatan/models"
)

func setupKegiatanService(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *KegiatanService) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock, NewKegiatanService(db)
}

func TestGetListKegiatan(t *testing.T) {
	_, mock, svc := setupKegiatanService(t)

	rows := sqlmock.NewRows([]string{"ID_Kegiatan", "Nama", "Tanggal_Mulai", "Tanggal_Selesai", "Penyelenggara", "Lokasi", "Status"}).
		AddRow("k1", "Posko Mudik", "2026-04-01", "2026-04-10", "Dinkes Sumsel", "Palembang", models.StatusOnProgress).
		AddRow("k2", "Bakti Sosial", "2026-03-10", "2026-03-11", "Dinkes Sumsel", "Prabumulih", models.StatusDone)

	mock.ExpectQuery(`SELECT ID_Kegiatan, Nama, Tanggal_Mulai`).WillReturnRows(rows)

	list, err := svc.GetListKegiatan()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Posko Mudik", list[0].Nama)
	assert.Equal(t, models.StatusDone, list[1].Status)
}

func TestCreateKegiatan_StatusDefaultToDo(t *testing.T) {
	_, mock, svc := setupKegiatanService(t)

	mock.ExpectExec(`INSERT INTO Kegiatan`).
		WithArgs(sqlmock.AnyArg(), "Posko Lebaran", "2026-05-01", "", "", "", models.StatusToDo).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := svc.CreateKegiatan(models.Kegiatan{Nama: "Posko Lebaran", TanggalMulai: "2026-05-01"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateKegiatan_IDKlienDipertahankan(t *testing.T) {
	_, mock, svc := setupKegiatanService(t)

	mock.ExpectExec(`INSERT INTO Kegiatan`).
		WithArgs("x1", "Vaccination Day", "2026-06-01", "", "", "", models.StatusToDo).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := svc.CreateKegiatan(models.Kegiatan{ID: "x1", Nama: "Vaccination Day", TanggalMulai: "2026-06-01"})
	require.NoError(t, err)
	assert.Equal(t, "x1", id)
}

func TestCreateKegiatan_StatusTidakValid(t *testing.T) {
	_, _, svc := setupKegiatanService(t)

	_, err := svc.CreateKegiatan(models.Kegiatan{Nama: "Posko", Status: "Selesai"})
	assert.Error(t, err)
}

func TestUpdateKegiatan_TidakDitemukan(t *testing.T) {
	_, mock, svc := setupKegiatanService(t)

	mock.ExpectExec(`UPDATE Kegiatan`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.UpdateKegiatan(models.Kegiatan{ID: "tidak-ada", Status: models.StatusDone})
	assert.EqualError(t, err, "kegiatan tidak ditemukan")
}

func TestDeleteKegiatan_Berhasil(t *testing.T) {
	_, mock, svc := setupKegiatanService(t)

	mock.ExpectExec(`DELETE FROM Kegiatan`).
		WithArgs("k1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, svc.DeleteKegiatan("k1"))
}
