package models

import "time"

type Page struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	ProjectID   uint64    `gorm:"not null;index" json:"projectId"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`

	// Relations
	Functionalities []Functionality  `gorm:"foreignKey:PageID;constraint:OnDelete:CASCADE" json:"-"`
	UserAccess      []UserPageAccess `gorm:"foreignKey:PageID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Page) TableName() string { return "pages" }
