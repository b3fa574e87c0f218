package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/info-graph/info-graph-task/configs"
	"github.com/info-graph/info-graph-task/middlewares"
	"github.com/info-graph/info-graph-task/routes"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	configs.SetupDatabase()

	if cfg.DemoSeed {
		if err := configs.SeedSampleData(); err != nil {
			log.Fatalf("seed demo data failed: %v", err)
		}
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
