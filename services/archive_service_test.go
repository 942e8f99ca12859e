package services

import (
	"context"
	"io"
	"testing"

	"brigadas_admin_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveReport(t *testing.T) {
	db := setupTestDB(t)
	storage := NewLocalStorage(t.TempDir())
	ctx := context.Background()
	id := 4

	archive, err := ArchiveReport(ctx, db, storage, models.ReportKindDetailPDF, &id, []byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.NotEmpty(t, archive.ID)
	assert.Equal(t, int64(13), archive.Size)
	assert.Contains(t, archive.Key, "reports/pdf/")
	require.NotNil(t, archive.BrigadaID)
	assert.Equal(t, 4, *archive.BrigadaID)

	reader, contentType, err := storage.Get(ctx, archive.Key)
	require.NoError(t, err)
	defer reader.Close()
	data, _ := io.ReadAll(reader)
	assert.Equal(t, "%PDF-1.4 fake", string(data))
	assert.Equal(t, ContentTypePDF, contentType)

	list, err := ListReportArchives(db, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, archive.Key, list[0].Key)
}

func TestArchiveReport_NoStorage(t *testing.T) {
	db := setupTestDB(t)
	_, err := ArchiveReport(context.Background(), db, nil, models.ReportKindInventory, nil, []byte("x"))
	assert.Error(t, err)
}
