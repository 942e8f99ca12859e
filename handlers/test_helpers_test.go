package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"brigadas_admin_go/config"
	"brigadas_admin_go/db"
	"brigadas_admin_go/models"
	"brigadas_admin_go/services"
	"brigadas_admin_go/services/api/apitest"
	"brigadas_admin_go/services/i18n"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique shared memory name isolates tests while letting every connection see the same data
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, testDB.AutoMigrate(&models.WizardDraft{}, &models.AuditLog{}, &models.ReportArchive{}))
	require.NoError(t, i18n.Load())

	prevDB, prevAudit := db.DB, recordAudit
	db.DB = testDB
	recordAudit = func(d *gorm.DB, ctx services.AuditContext, ev services.AuditEvent) {
		_ = services.RecordAuditEvent(d, ctx, ev)
	}
	t.Cleanup(func() {
		db.DB, recordAudit = prevDB, prevAudit
	})

	return testDB
}

// setupFake installs an empty in-memory brigade service
func setupFake(t *testing.T) *apitest.Fake {
	t.Helper()
	fake := apitest.New()
	prev := services.API
	services.API = fake
	t.Cleanup(func() { services.API = prev })
	return fake
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.Set("config", &config.Config{
		Environment: "test",
		DraftTTL:    services.DefaultDraftTTL,
		AppURL:      "http://localhost:8080",
	})

	return e, c, rec
}

// postForm builds a POST context with url-encoded values
func postForm(path string, values url.Values) (echo.Context, *httptest.ResponseRecorder) {
	_, c, rec := setupEcho(http.MethodPost, path, strings.NewReader(values.Encode()))
	return c, rec
}

func withID(c echo.Context, id string) echo.Context {
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c
}

func auditActions(t *testing.T, database *gorm.DB) []models.AuditAction {
	t.Helper()
	var logs []models.AuditLog
	require.NoError(t, database.Order("created_at ASC").Find(&logs).Error)
	actions := make([]models.AuditAction, 0, len(logs))
	for _, l := range logs {
		actions = append(actions, l.Action)
	}
	return actions
}
