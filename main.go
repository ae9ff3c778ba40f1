package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"personal-website-api/config"
	"personal-website-api/handlers"
	"personal-website-api/repositories"
	"personal-website-api/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	// Initialize database; connection and schema creation are best-effort
	// at boot, request handling reports outages as they happen
	db, err := config.InitDB(cfg)
	if err != nil {
		logrus.WithError(err).Warn("Database unavailable at startup, continuing without it")
	} else {
		config.MigrateDB(db)
	}

	// Initialize repositories
	contactRepo := repositories.NewContactRepository(db)
	newsletterRepo := repositories.NewNewsletterRepository(db)
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	postRepo := repositories.NewPostRepository(db)
	projectRepo := repositories.NewProjectRepository(db)

	// Initialize services
	mailer := services.NewMailer(cfg)
	contactService := services.NewContactService(contactRepo, mailer)
	newsletterService := services.NewNewsletterService(newsletterRepo)
	userService := services.NewUserService(userRepo)
	contentService := services.NewContentService(categoryRepo, postRepo, projectRepo)
	adminService := services.NewAdminService(cfg)

	// Initialize handlers
	contactHandler := handlers.NewContactHandler(contactService)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService)
	userHandler := handlers.NewUserHandler(userService)
	contentHandler := handlers.NewContentHandler(contentService)
	adminHandler := handlers.NewAdminHandler(adminService, contactService)
	healthHandler := handlers.NewHealthHandler(db)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	handlers.RegisterRoutes(router, cfg, contactHandler, newsletterHandler, userHandler, contentHandler, adminHandler, healthHandler)

	logrus.WithField("addr", cfg.ServerAddr()).Info("Server starting")
	logrus.Fatal(router.Run(cfg.ServerAddr()))
}

