package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReportKindInventory = "xlsx"
	ReportKindDetailPDF = "pdf"
)

// ReportArchive records an exported report kept in report storage
type ReportArchive struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`

	Kind      string `gorm:"not null;index" json:"kind"`
	BrigadaID *int   `gorm:"index" json:"brigada_id,omitempty"`
	Key       string `gorm:"not null" json:"key"`
	URL       string `json:"url"`
	Size      int64  `json:"size"`
}

// BeforeCreate hook to generate UUID
func (r *ReportArchive) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (ReportArchive) TableName() string {
	return "report_archives"
}
