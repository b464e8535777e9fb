package main

import (
	"fmt"
	"log"
	"net/url"
	"os"

	"Backend-CrickZone/src/database"
	"Backend-CrickZone/src/jobs"
	"Backend-CrickZone/src/routes"
	"Backend-CrickZone/src/services/mailer"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	database.InitRedis()
	database.InitAsynq()
	jobs.StartWorker(mailer.RegisterMailHandlers)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	routes.InitRoutes(app)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = "8888"
	}

	log.Println("Server is running on port " + appPort)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appPort)))
	if err != nil {
		log.Fatal(err)
	}
}
