package main

import (
	"fmt"
	"log"

	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/configs"
	"github.com/Liwondo-005/FOODHUB-ORDERING-SYSTEM/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	configs.SetupDatabase()

	if err := configs.SeedDemo(); err != nil {
		log.Fatalf("seed demo data failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, cfg, configs.DB())

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("listening on", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
