package main

import (
	"log"

	"clubhub/config"
	"clubhub/database"
	achievementRoutes "clubhub/routers/achievementRoutes"
	authRoutes "clubhub/routers/authRoutes"
	certificateRoutes "clubhub/routers/certificateRoutes"
	clubRoutes "clubhub/routers/clubRoutes"
	meetingRoutes "clubhub/routers/meetingRoutes"
	notificationRoutes "clubhub/routers/notificationRoutes"
	"clubhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization,Idempotency-Key",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	clubRoutes.SetupClubRoutes(app)
	meetingRoutes.SetupMeetingRoutes(app)
	achievementRoutes.SetupAchievementRoutes(app)
	certificateRoutes.SetupCertificateRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)

	utils.StartReminderScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
