package models

import "time"

type UserPageAccess struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"not null;index" json:"userId"`
	PageID    uint64    `gorm:"not null;index" json:"pageId"`
	CanAccess bool      `gorm:"not null;default:true" json:"canAccess"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (UserPageAccess) TableName() string { return "user_page_access" }

type UserFunctionalityAccess struct {
	ID              uint64    `gorm:"primarykey" json:"id"`
	UserID          uint64    `gorm:"not null;index" json:"userId"`
	FunctionalityID uint64    `gorm:"not null;index" json:"functionalityId"`
	CanAccess       bool      `gorm:"not null;default:true" json:"canAccess"`
	CreatedAt       time.Time `gorm:"not null" json:"createdAt"`
}

func (UserFunctionalityAccess) TableName() string { return "user_functionality_access" }
