package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"brigadas_admin_go/models"

	"gorm.io/gorm"
)

// ArchiveReport stores an exported report and records it.
// brigadaID is nil for reports that cover every brigade.
func ArchiveReport(ctx context.Context, db *gorm.DB, storage StorageProvider, kind string, brigadaID *int, data []byte) (*models.ReportArchive, error) {
	if storage == nil {
		return nil, fmt.Errorf("archive report: storage not initialized")
	}

	key := GenerateReportKey(kind, time.Now())
	result, err := storage.UploadReader(ctx, bytes.NewReader(data), key, ContentTypeFor(key), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("archive report: %w", err)
	}

	archive := &models.ReportArchive{
		Kind:      kind,
		BrigadaID: brigadaID,
		Key:       result.Key,
		URL:       result.URL,
		Size:      result.FileSize,
	}
	if err := db.WithContext(ctx).Create(archive).Error; err != nil {
		return nil, fmt.Errorf("record report archive: %w", err)
	}
	return archive, nil
}

// ListReportArchives returns the latest archived reports
func ListReportArchives(db *gorm.DB, limit int) ([]models.ReportArchive, error) {
	var archives []models.ReportArchive
	err := db.Order("created_at DESC").Limit(limit).Find(&archives).Error
	return archives, err
}
