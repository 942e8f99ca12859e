package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"brigadas_admin_go/models"
	"brigadas_admin_go/services/wizard"

	"gorm.io/gorm"
)

// ErrDraftNotFound is returned for unknown or expired drafts
var ErrDraftNotFound = errors.New("wizard draft not found")

// DefaultDraftTTL applies when the store is created without a TTL
const DefaultDraftTTL = 24 * time.Hour

// DraftStore persists wizard form state between requests
type DraftStore struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// NewDraftStore creates a store whose drafts live for ttl after their last save
func NewDraftStore(db *gorm.DB, ttl time.Duration) *DraftStore {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	return &DraftStore{db: db, ttl: ttl, now: time.Now}
}

// Create stores a new draft and returns its id
func (s *DraftStore) Create(f *wizard.FormState) (string, error) {
	draft := models.WizardDraft{}
	if err := s.fill(&draft, f); err != nil {
		return "", err
	}
	if err := s.db.Create(&draft).Error; err != nil {
		return "", fmt.Errorf("create draft: %w", err)
	}
	return draft.ID, nil
}

// Load returns the form state of a live draft
func (s *DraftStore) Load(id string) (*wizard.FormState, error) {
	if id == "" {
		return nil, ErrDraftNotFound
	}

	var draft models.WizardDraft
	err := s.db.Where("id = ? AND expires_at > ?", id, s.now()).First(&draft).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}

	f := wizard.NewFormState()
	if err := json.Unmarshal([]byte(draft.Payload), f); err != nil {
		return nil, fmt.Errorf("decode draft %s: %w", id, err)
	}
	if !f.Step.Valid() {
		f.Step = wizard.StepBrigadeInfo
	}
	return f, nil
}

// Save overwrites the draft payload and extends its expiry
func (s *DraftStore) Save(id string, f *wizard.FormState) error {
	draft := models.WizardDraft{ID: id}
	if err := s.fill(&draft, f); err != nil {
		return err
	}

	res := s.db.Model(&models.WizardDraft{}).Where("id = ?", id).Updates(map[string]interface{}{
		"brigada_id": draft.BrigadaID,
		"step":       draft.Step,
		"payload":    draft.Payload,
		"expires_at": draft.ExpiresAt,
	})
	if res.Error != nil {
		return fmt.Errorf("save draft: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrDraftNotFound
	}
	return nil
}

// Delete removes a draft; unknown ids are not an error
func (s *DraftStore) Delete(id string) error {
	if err := s.db.Where("id = ?", id).Delete(&models.WizardDraft{}).Error; err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

// CleanupExpired removes drafts that expired before now
func (s *DraftStore) CleanupExpired() (int64, error) {
	res := s.db.Where("expires_at <= ?", s.now()).Delete(&models.WizardDraft{})
	if res.Error != nil {
		return 0, fmt.Errorf("cleanup drafts: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *DraftStore) fill(draft *models.WizardDraft, f *wizard.FormState) error {
	payload, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	draft.Payload = string(payload)
	draft.Step = int(f.Step)
	draft.ExpiresAt = s.now().Add(s.ttl)
	draft.BrigadaID = nil
	if f.IsEditing() {
		id := f.BrigadaID
		draft.BrigadaID = &id
	}
	return nil
}
