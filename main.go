package main

import (
	"log"

	"examdesk/apiclient"
	"examdesk/config"
	"examdesk/middleware"
	"examdesk/routers/adminRoutes"
	"examdesk/routers/authRoutes"
	"examdesk/routers/studentRoutes"
	"examdesk/routers/teacherRoutes"
	"examdesk/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/robfig/cron/v3"
)

func main() {
	config.LoadConfig()

	storage, err := session.NewStorage(config.AppConfig.SessionDBName)
	if err != nil {
		log.Fatalf("Failed to open session store: %v", err)
	}
	middleware.InitSessionStore(storage)
	apiclient.Configure(config.AppConfig.APIBaseURL)

	scheduler := cron.New()
	storage.StartSweeper(scheduler)
	scheduler.Start()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	teacherRoutes.SetupTeacherRoutes(app)
	studentRoutes.SetupStudentRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
