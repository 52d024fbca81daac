package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/vectorhealth/hospital-management/cron"
	"github.com/vectorhealth/hospital-management/db"
	"github.com/vectorhealth/hospital-management/redis"
	"github.com/vectorhealth/hospital-management/routes"
)

func main() {
	db.Init()
	db.Migrate()
	db.Seed()

	if os.Getenv("REDIS_ADDR") != "" {
		redis.InitRedis()
	}

	cron.StartCronJobs()

	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE",
	}))

	routes.SetupAuthRoutes(app)
	routes.SetupRBACRoutes(app)
	routes.SetupDoctorRoutes(app)
	routes.SetupPatientRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupWorkingHourRoutes(app)
	routes.SetupEquipmentRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
