package database

import (
	"fmt"
	"time"

	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/config"
	applog "github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/logger"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Models lists every table owned by the service, parents first.
var Models = []interface{}{
	&models.Project{},
	&models.RequirementUser{},
	&models.Page{},
	&models.Functionality{},
	&models.Workflow{},
	&models.UserPageAccess{},
	&models.UserFunctionalityAccess{},
}

func Connect(cfg *config.Config) error {
	dialector, err := Dialector(cfg)
	if err != nil {
		return err
	}

	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(logrus.StandardLogger()),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	applog.Default().WithField("driver", cfg.DBDriver).Info("Database connection established")
	return nil
}

// Dialector builds the GORM dialector for the configured driver. DATABASE_URL,
// when set, is used verbatim as the DSN.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "postgres":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
				cfg.DBHost,
				cfg.DBPort,
				cfg.DBUser,
				cfg.DBPassword,
				cfg.DBName,
				cfg.DBSSLMode,
			)
		}
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				cfg.DBUser,
				cfg.DBPassword,
				cfg.DBHost,
				cfg.DBPort,
				cfg.DBName,
			)
		}
		return mysql.Open(dsn), nil
	case "sqlite":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = fmt.Sprintf("file:%s.db?_foreign_keys=on", cfg.DBName)
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// NewGormLogger routes GORM's SQL logging through logrus.
func NewGormLogger(l *logrus.Logger) logger.Interface {
	level := logger.Warn
	if l.IsLevelEnabled(logrus.DebugLevel) {
		level = logger.Info
	}
	return logger.New(l, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}

func Migrate() error {
	applog.Default().Info("Running database migrations...")
	if err := DB.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := AddIndexes(DB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	applog.Default().Info("Database migrations completed")
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
