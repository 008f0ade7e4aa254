package main

import (
	"fmt"

	"backend/configs"
	"backend/middlewares"
	"backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.ConnectDB(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	// migrate + seed
	if err := configs.SetupDatabase(db); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	if err := configs.SeedMenu(db); err != nil {
		logrus.Fatalf("seed menu failed: %v", err)
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(middlewares.CORSMiddleware(cfg))

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.Infof("server running at %s", addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatal(err)
	}
}
