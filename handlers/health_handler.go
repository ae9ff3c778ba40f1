package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"personal-website-api/config"
	"personal-website-api/models"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check runs a trivial liveness query and reports the result in the body.
// The endpoint itself always answers 200 so monitors can read the database
// state instead of guessing from the status code.
func (h *HealthHandler) Check(c *gin.Context) {
	dbStatus := "disconnected"
	if h.db != nil {
		if err := h.db.Exec("SELECT 1").Error; err != nil {
			dbStatus = "error: " + err.Error()
		} else {
			dbStatus = "connected"
		}
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:   "healthy",
		Version:  config.AppVersion,
		Database: dbStatus,
	})
}
