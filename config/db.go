package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"personal-website-api/models"
)

// InitDB opens the database connection described by the config. The pool is
// tuned for serverless execution: a single connection, no overflow, recycled
// every five minutes so stale connections are never reused.
func InitDB(cfg *Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		// Surface unique-constraint violations as gorm.ErrDuplicatedKey so
		// services can translate them into duplicate responses.
		TranslateError: true,
		// Don't ping at open: an unreachable database must not stop boot.
		// Outages surface through normal request handling and the health
		// endpoint instead.
		DisableAutomaticPing: true,
	}
	if !cfg.Debug {
		gormCfg.Logger = logger.Default.LogMode(logger.Silent)
	}

	var dialector gorm.Dialector
	if cfg.UsePostgres() {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		if dir := filepath.Dir(cfg.DatabaseURL); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, err
			}
		}
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// MigrateDB creates the schema if it does not exist. Failure is non-fatal:
// in serverless deployments the tables are usually pre-provisioned and the
// database may not even be reachable at boot, so errors are logged and
// surfaced later through normal request handling.
func MigrateDB(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Contact{},
		&models.Newsletter{},
		&models.User{},
		&models.UserImage{},
		&models.Category{},
		&models.Post{},
		&models.Project{},
	)
	if err != nil {
		logrus.WithError(err).Warn("Database initialization skipped, tables will be created on first use if needed")
		return
	}
	logrus.Info("Database schema ready")
}
