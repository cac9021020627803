package models

import (
	"time"

	"gorm.io/datatypes"
)

type FunctionalityType string

const (
	FunctionalityTypeButton FunctionalityType = "button"
	FunctionalityTypeForm   FunctionalityType = "form"
	FunctionalityTypeTable  FunctionalityType = "table"
)

// Valid reports whether t is one of the supported UI element kinds.
func (t FunctionalityType) Valid() bool {
	switch t {
	case FunctionalityTypeButton, FunctionalityTypeForm, FunctionalityTypeTable:
		return true
	}
	return false
}

// Functionality is a UI element placed on a page. Fields holds the form or
// table field descriptors ({name, type, required, validation}) verbatim.
type Functionality struct {
	ID            uint64            `gorm:"primarykey" json:"id"`
	PageID        uint64            `gorm:"not null;index" json:"pageId"`
	Name          string            `gorm:"type:text;not null" json:"name"`
	Description   *string           `gorm:"type:text" json:"description"`
	Type          FunctionalityType `gorm:"type:varchar(20);not null" json:"type"`
	Fields        datatypes.JSON    `json:"fields"`
	DataToDisplay *string           `gorm:"type:text" json:"dataToDisplay"`
	CreatedAt     time.Time         `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time         `gorm:"not null" json:"updatedAt"`

	// Relations
	UserAccess []UserFunctionalityAccess `gorm:"foreignKey:FunctionalityID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Functionality) TableName() string { return "functionalities" }
