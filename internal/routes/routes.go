package routes

import (
	"database/sql"

	"github.com/labstack/echo/v4"

	adminControllers "github.com/pcc-sumsel/pcc-backend/internal/administrasi/controllers"
	adminServices "github.com/pcc-sumsel/pcc-backend/internal/administrasi/services"
	"github.com/pcc-sumsel/pcc-backend/internal/common/middlewares"
	kegiatanControllers "github.com/pcc-sumsel/pcc-backend/internal/kegiatan/controllers"
	kegiatanServices "github.com/pcc-sumsel/pcc-backend/internal/kegiatan/services"
	kontenControllers "github.com/pcc-sumsel/pcc-backend/internal/konten/controllers"
	kontenServices "github.com/pcc-sumsel/pcc-backend/internal/konten/services"
	manajemenControllers "github.com/pcc-sumsel/pcc-backend/internal/manajemen/controllers"
	manajemenServices "github.com/pcc-sumsel/pcc-backend/internal/manajemen/services"
	"github.com/pcc-sumsel/pcc-backend/ws"
)

// Init menginisialisasi semua routes menggunakan Echo framework.
func Init(e *echo.Echo, db *sql.DB) {
	// Inisialisasi service
	kegiatanService := kegiatanServices.NewKegiatanService(db)
	pendaftaranService := adminServices.NewPendaftaranService(db)
	petugasService := manajemenServices.NewPetugasService(db)
	icd10Service := manajemenServices.NewICD10Service(db)
	logService := manajemenServices.NewLogService(db)
	kontenService := kontenServices.NewKontenService(db)

	// Inisialisasi controller dengan service yang sesuai
	kegiatanController := kegiatanControllers.NewKegiatanController(kegiatanService)
	pasienController := adminControllers.NewPasienController(pendaftaranService)
	authController := manajemenControllers.NewAuthController(petugasService)
	petugasController := manajemenControllers.NewPetugasController(petugasService)
	icd10Controller := manajemenControllers.NewICD10Controller(icd10Service)
	logController := manajemenControllers.NewLogController(logService)
	kontenController := kontenControllers.NewKontenController(kontenService)

	// Grup API utama
	api := e.Group("/api")

	// Login tidak pakai JWT
	api.POST("/auth/login", authController.Login)

	// **Grup Kegiatan** — GET publik, mutasi dilindungi JWT
	api.GET("/activities", kegiatanController.ListKegiatan)
	api.POST("/activities", kegiatanController.CreateKegiatan, middlewares.JWTMiddleware())
	api.PUT("/activities/:id", kegiatanController.UpdateKegiatan, middlewares.JWTMiddleware())
	api.DELETE("/activities/:id", kegiatanController.DeleteKegiatan, middlewares.JWTMiddleware())

	// **Grup Pasien** — seluruhnya dilindungi JWT
	pasien := api.Group("/patients", middlewares.JWTMiddleware())
	pasien.GET("", pasienController.ListPasien)
	pasien.POST("", pasienController.RegisterPasien)
	pasien.PUT("/:id", pasienController.UpdatePasien)
	pasien.DELETE("/:id", pasienController.DeletePasien)

	// **Grup Petugas** — dilindungi JWT; mutasi akun hanya admin
	petugas := api.Group("/officers", middlewares.JWTMiddleware())
	petugas.GET("", petugasController.ListPetugas)
	petugas.POST("", petugasController.CreatePetugas, middlewares.RequireAdmin())
	petugas.PUT("/:id", petugasController.UpdatePetugas, middlewares.RequireAdmin())
	petugas.DELETE("/:id", petugasController.DeletePetugas, middlewares.RequireAdmin())

	// **Grup ICD-10** — dilindungi JWT; kunci entitas adalah kode
	icd10 := api.Group("/icd10", middlewares.JWTMiddleware())
	icd10.GET("", icd10Controller.ListICD10)
	icd10.POST("", icd10Controller.CreateICD10)
	icd10.PUT("/:kode", icd10Controller.UpdateICD10)
	icd10.DELETE("/:kode", icd10Controller.DeleteICD10)

	// **Grup Log Petugas** — dilindungi JWT
	logs := api.Group("/logs", middlewares.JWTMiddleware())
	logs.GET("", logController.ListLog)
	logs.POST("", logController.CreateLog)
	logs.PUT("/:id", logController.UpdateLog)
	logs.DELETE("/:id", logController.DeleteLog)

	// **Grup Konten** — GET publik untuk situs, mutasi dilindungi JWT
	api.GET("/content/news", kontenController.ListBerita)
	api.POST("/content/news", kontenController.CreateBerita, middlewares.JWTMiddleware())
	api.PUT("/content/news/:id", kontenController.UpdateBerita, middlewares.JWTMiddleware())
	api.DELETE("/content/news/:id", kontenController.DeleteBerita, middlewares.JWTMiddleware())

	api.GET("/content/carousel", kontenController.ListCarousel)
	api.POST("/content/carousel", kontenController.CreateCarousel, middlewares.JWTMiddleware())
	api.PUT("/content/carousel/:id", kontenController.UpdateCarousel, middlewares.JWTMiddleware())
	api.DELETE("/content/carousel/:id", kontenController.DeleteCarousel, middlewares.JWTMiddleware())

	// WebSocket untuk notifikasi perubahan data ke dashboard
	e.GET("/ws", ws.ServeWS(ws.HubInstance))
}
