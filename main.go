package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/pcc-sumsel/pcc-backend/config"
	"github.com/pcc-sumsel/pcc-backend/internal/routes"
	"github.com/pcc-sumsel/pcc-backend/pkg/storage/mariadb"
)

func main() {
	cfg := config.LoadConfig()
	db := mariadb.Connect()

	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	routes.Init(e, db)

	log.Printf("Server berjalan pada port %s...", cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}
