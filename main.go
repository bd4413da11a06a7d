package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"resto-api/config"
	"resto-api/controllers"
	"resto-api/migrations"
	"resto-api/realtime"
	"resto-api/routes"
	"resto-api/seeders"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	// connect db
	config.ConnectDatabase()

	// one-off sales record backfill: `resto-api backfill`
	if len(os.Args) > 1 && os.Args[1] == "backfill" {
		created, err := migrations.BackfillSalesRecords(config.DB)
		if err != nil {
			log.Fatal("Backfill failed: ", err)
		}
		fmt.Printf("Backfill done, %d sales records created\n", created)
		return
	}

	// websocket hub + controller wiring
	hub := realtime.NewHub()
	controllers.Init(hub)

	// init router
	r := gin.Default() // Logger & Recovery included

	// CORS before routes
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-API-Key"},
		AllowCredentials: true,
	}))

	// routes
	routes.RegisterRoutes(r, hub)

	// seed data
	seeders.Seed()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
