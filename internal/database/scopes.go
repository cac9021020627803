package database

import "gorm.io/gorm"

// ByProject restricts a query to rows owned by the given project
func ByProject(projectID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("project_id = ?", projectID)
	}
}

// ByPage restricts a query to rows owned by the given page
func ByPage(pageID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("page_id = ?", pageID)
	}
}

// ByUser restricts a query to access rows of the given requirement user
func ByUser(userID uint64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
