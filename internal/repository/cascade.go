package repository

import (
	"github.com/shahzaibahmadpawar1/SoftwareReqiurementApp-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The helpers below remove dependents child-first. The schema also declares
// ON DELETE CASCADE, but stores running without foreign key enforcement
// (SQLite by default) rely on these explicit deletes.

// deleteRoot deletes the owning row last and reports a missing row as
// gorm.ErrRecordNotFound, which rolls back the surrounding transaction.
func deleteRoot(tx *gorm.DB, model interface{}, id uint64) error {
	result := tx.Delete(model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// updateRoot writes every column of model by primary key. Unlike Save it never
// falls back to an insert, so a row deleted since it was read is reported as
// gorm.ErrRecordNotFound instead of coming back.
func updateRoot(tx *gorm.DB, model interface{}) error {
	result := tx.Model(model).Select("*").Omit(clause.Associations).Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// deleteFunctionalityDependents removes the access rows granted on the functionalities
func deleteFunctionalityDependents(tx *gorm.DB, functionalityIDs []uint64) error {
	if len(functionalityIDs) == 0 {
		return nil
	}
	return tx.Where("functionality_id IN ?", functionalityIDs).Delete(&models.UserFunctionalityAccess{}).Error
}

// deletePageDependents removes the functionalities of the pages, their access
// rows and the page access rows
func deletePageDependents(tx *gorm.DB, pageIDs []uint64) error {
	if len(pageIDs) == 0 {
		return nil
	}

	var functionalityIDs []uint64
	if err := tx.Model(&models.Functionality{}).Where("page_id IN ?", pageIDs).Pluck("id", &functionalityIDs).Error; err != nil {
		return err
	}
	if err := deleteFunctionalityDependents(tx, functionalityIDs); err != nil {
		return err
	}
	if err := tx.Where("page_id IN ?", pageIDs).Delete(&models.Functionality{}).Error; err != nil {
		return err
	}

	return tx.Where("page_id IN ?", pageIDs).Delete(&models.UserPageAccess{}).Error
}

// deleteUserDependents removes both access lists of the users
func deleteUserDependents(tx *gorm.DB, userIDs []uint64) error {
	if len(userIDs) == 0 {
		return nil
	}

	if err := tx.Where("user_id IN ?", userIDs).Delete(&models.UserPageAccess{}).Error; err != nil {
		return err
	}
	return tx.Where("user_id IN ?", userIDs).Delete(&models.UserFunctionalityAccess{}).Error
}
