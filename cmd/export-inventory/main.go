package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"brigadas_admin_go/config"
	"brigadas_admin_go/db"
	"brigadas_admin_go/logger"
	"brigadas_admin_go/models"
	"brigadas_admin_go/services"
	"brigadas_admin_go/services/i18n"

	"go.uber.org/zap"
)

// Writes the inventory workbook of every brigade to a file,
// optionally archiving it like the nightly snapshot job does.
func main() {
	out := flag.String("out", fmt.Sprintf("inventario_brigadas_%s.xlsx", time.Now().Format("20060102_150405")), "output file")
	archive := flag.Bool("archive", false, "also store the workbook in the report archive")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall time limit")
	flag.Parse()

	cfg, warnings := config.Load()
	log := logger.Must(cfg.Environment, cfg.LogLevel)
	defer log.Sync() //nolint:errcheck
	zap.ReplaceGlobals(log)
	for _, w := range warnings {
		log.Warn("configuration", zap.String("warning", w))
	}

	if err := i18n.Load(); err != nil {
		log.Fatal("failed to load translations", zap.Error(err))
	}

	services.InitializeAPI(cfg, log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	report, err := services.CollectInventoryReport(ctx, services.API)
	if err != nil {
		log.Fatal("failed to collect inventory", zap.Error(err))
	}
	buf, err := services.BuildInventoryWorkbook(ctx, report)
	if err != nil {
		log.Fatal("failed to build workbook", zap.Error(err))
	}

	if err := os.WriteFile(*out, buf.Bytes(), 0o644); err != nil {
		log.Fatal("failed to write workbook", zap.String("path", *out), zap.Error(err))
	}
	log.Info("inventory exported", zap.String("path", *out), zap.Int("brigadas", len(report.Details)))

	if !*archive {
		return
	}

	if err := db.Initialize(db.Options{
		Path:        cfg.DBPath,
		TursoURL:    cfg.TursoDatabaseURL,
		TursoToken:  cfg.TursoAuthToken,
		Environment: cfg.Environment,
	}); err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()
	if err := db.AutoMigrate(&models.ReportArchive{}); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	services.InitializeStorage(cfg)
	rec, err := services.ArchiveReport(ctx, db.DB, services.Storage, models.ReportKindInventory, nil, buf.Bytes())
	if err != nil {
		log.Fatal("failed to archive workbook", zap.Error(err))
	}
	log.Info("inventory archived", zap.String("key", rec.Key), zap.String("url", rec.URL))
}
