package models

import "time"

type Project struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`

	// Relations
	Users     []RequirementUser `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Pages     []Page            `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
	Workflows []Workflow        `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Project) TableName() string { return "projects" }
