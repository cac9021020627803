package models

import (
	"time"

	"gorm.io/datatypes"
)

// Workflow stores a flowchart graph, usually {"nodes": [...], "edges": [...]},
// exactly as the client sent it.
type Workflow struct {
	ID            uint64         `gorm:"primarykey" json:"id"`
	ProjectID     uint64         `gorm:"not null;index" json:"projectId"`
	Name          string         `gorm:"type:text;not null" json:"name"`
	Description   *string        `gorm:"type:text" json:"description"`
	FlowchartData datatypes.JSON `json:"flowchartData"`
	CreatedAt     time.Time      `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time      `gorm:"not null" json:"updatedAt"`
}

func (Workflow) TableName() string { return "workflows" }
