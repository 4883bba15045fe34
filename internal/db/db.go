package db

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/SalesMasterPro/sales-api/internal/config"
)

// NewDB abre a conexão conforme DB_TYPE. O padrão é um arquivo sqlite
// local: o banco pertence ao processo, como o IndexedDB pertencia ao
// navegador.
func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DBType {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBPath)

	case "postgres", "postgresql":
		if cfg.DBUrl == "" {
			return nil, fmt.Errorf("DB_TYPE=postgres requires DATABASE_URL")
		}
		dialector = postgres.Open(cfg.DBUrl)

	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: true,
		Logger:      gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	log.Info("database connected",
		zap.String("type", cfg.DBType),
	)

	return db, nil
}
