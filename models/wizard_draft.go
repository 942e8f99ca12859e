package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WizardDraft holds the in-progress form state of the complete brigade wizard
// for one browser. Payload is the JSON encoded form state.
type WizardDraft struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	BrigadaID *int      `gorm:"index" json:"brigada_id,omitempty"` // nil while creating
	Step      int       `gorm:"not null;default:1" json:"step"`
	Payload   string    `gorm:"type:text;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
}

// BeforeCreate hook to generate UUID
func (d *WizardDraft) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name
func (WizardDraft) TableName() string {
	return "wizard_drafts"
}

// IsEditing reports whether the draft edits an existing brigade
func (d *WizardDraft) IsEditing() bool {
	return d.BrigadaID != nil
}

// IsExpired checks if the draft has outlived its TTL
func (d *WizardDraft) IsExpired() bool {
	return time.Now().After(d.ExpiresAt)
}
