package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"personal-website-api/config"
	"personal-website-api/models"
	"personal-website-api/repositories"
	"personal-website-api/services"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	err = db.AutoMigrate(
		&models.Contact{},
		&models.Newsletter{},
		&models.User{},
		&models.UserImage{},
		&models.Category{},
		&models.Post{},
		&models.Project{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:   "test",
		AdminUser:     "admin",
		AdminPassword: "admin123",
		APISecretKey:  "test-secret",
		AdminTokenTTL: time.Hour,
	}
}

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	cfg := testConfig()

	contactRepo := repositories.NewContactRepository(db)
	newsletterRepo := repositories.NewNewsletterRepository(db)
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	postRepo := repositories.NewPostRepository(db)
	projectRepo := repositories.NewProjectRepository(db)

	mailer := services.NewMailer(cfg)
	contactService := services.NewContactService(contactRepo, mailer)
	newsletterService := services.NewNewsletterService(newsletterRepo)
	userService := services.NewUserService(userRepo)
	contentService := services.NewContentService(categoryRepo, postRepo, projectRepo)
	adminService := services.NewAdminService(cfg)

	contactHandler := NewContactHandler(contactService)
	newsletterHandler := NewNewsletterHandler(newsletterService)
	userHandler := NewUserHandler(userService)
	contentHandler := NewContentHandler(contentService)
	adminHandler := NewAdminHandler(adminService, contactService)
	healthHandler := NewHealthHandler(db)

	router := gin.New()
	RegisterRoutes(router, cfg, contactHandler, newsletterHandler, userHandler, contentHandler, adminHandler, healthHandler)

	return router, db
}

func performRequest(router *gin.Engine, method, path string, body interface{}, headers ...map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, hs := range headers {
		for k, v := range hs {
			req.Header.Set(k, v)
		}
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, w.Body.String())
	}
}
