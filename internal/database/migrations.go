package database

import (
	"fmt"

	applog "github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/logger"
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/models"
	"gorm.io/gorm"
)

// AddIndexes adds the composite lookup indexes that AutoMigrate cannot express
// through single-column tags.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model   interface{}
		name    string
		columns string
	}{
		{&models.UserPageAccess{}, "idx_user_page_access_user_page", "user_id, page_id"},
		{&models.UserFunctionalityAccess{}, "idx_user_functionality_access_user_functionality", "user_id, functionality_id"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			applog.Default().Debugf("Index %s already exists, skipping", idx.name)
			continue
		}

		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(idx.model); err != nil {
			return fmt.Errorf("failed to resolve table for index %s: %w", idx.name, err)
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, stmt.Schema.Table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		applog.Default().Infof("Created index %s on %s(%s)", idx.name, stmt.Schema.Table, idx.columns)
	}

	return nil
}
