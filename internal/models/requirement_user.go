package models

import (
	"time"

	"gorm.io/datatypes"
)

// RequirementUser is a persona defined by the requirements of a project. It is
// not an account of this API.
type RequirementUser struct {
	ID          uint64                      `gorm:"primarykey" json:"id"`
	ProjectID   uint64                      `gorm:"not null;index" json:"projectId"`
	Name        string                      `gorm:"type:text;not null" json:"name"`
	Description *string                     `gorm:"type:text" json:"description"`
	Privileges  datatypes.JSONSlice[string] `json:"privileges"`
	CreatedAt   time.Time                   `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time                   `gorm:"not null" json:"updatedAt"`

	// Relations
	PageAccess          []UserPageAccess          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	FunctionalityAccess []UserFunctionalityAccess `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RequirementUser) TableName() string { return "requirement_users" }
