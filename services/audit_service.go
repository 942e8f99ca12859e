package services

import (
	"encoding/json"
	"fmt"

	"brigadas_admin_go/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AnonymousActor is recorded when admin auth is disabled
const AnonymousActor = "anonymous"

// AuditContext carries who made a request
type AuditContext struct {
	Actor     string
	IPAddress string
	UserAgent string
}

// AuditEvent describes one write against the brigade service
type AuditEvent struct {
	Action       models.AuditAction
	ResourceType string
	ResourceID   string
	ResourceName string
	Description  string
	NewValues    interface{}
}

// RecordAuditEvent stores an audit entry
func RecordAuditEvent(db *gorm.DB, ctx AuditContext, ev AuditEvent) error {
	var newJSON string
	if ev.NewValues != nil {
		if b, err := json.Marshal(ev.NewValues); err == nil {
			newJSON = string(b)
		}
	}

	actor := ctx.Actor
	if actor == "" {
		actor = AnonymousActor
	}

	entry := models.AuditLog{
		Actor:        actor,
		ResourceType: ev.ResourceType,
		ResourceID:   ev.ResourceID,
		ResourceName: ev.ResourceName,
		Action:       ev.Action,
		Description:  ev.Description,
		NewValues:    newJSON,
		IPAddress:    ctx.IPAddress,
		UserAgent:    ctx.UserAgent,
	}
	if err := db.Create(&entry).Error; err != nil {
		return fmt.Errorf("create audit log: %w", err)
	}
	return nil
}

// LogAuditEvent records the entry in the background so the request is not blocked
func LogAuditEvent(db *gorm.DB, ctx AuditContext, ev AuditEvent) {
	if db == nil {
		return
	}
	go func() {
		if err := RecordAuditEvent(db, ctx, ev); err != nil {
			zap.L().Error("audit log failed",
				zap.String("resource_type", ev.ResourceType),
				zap.String("resource_id", ev.ResourceID),
				zap.Error(err))
		}
	}()
}

// GetResourceAuditHistory lists the entries of one resource, newest first
func GetResourceAuditHistory(db *gorm.DB, resourceType, resourceID string) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := db.Where("resource_type = ? AND resource_id = ?", resourceType, resourceID).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}

// RecentAuditLogs lists the latest entries across every resource
func RecentAuditLogs(db *gorm.DB, limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := db.Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
