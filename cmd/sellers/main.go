package main

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/vtexops/vtex-exporter-go/internal/config"
	"github.com/vtexops/vtex-exporter-go/internal/export"
	"github.com/vtexops/vtex-exporter-go/internal/logging"
	"github.com/vtexops/vtex-exporter-go/internal/vtex"
)

func main() {
	logger := logging.New()
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("configuration error", zap.Error(err))
	}

	ctx := context.Background()
	client := vtex.NewClient(cfg, logger)

	sellers, err := client.ListSellers(ctx)
	if err != nil {
		logger.Warn("seller pull ended early, exporting what was collected", zap.Error(err))
	}
	if cfg.IncludeDetails {
		sellers = client.EnrichSellers(ctx, sellers)
	}

	normalizer := export.NewNormalizer(vtex.SellerFieldRenames)
	exporter := export.NewExporter(vtex.SellerColumns)
	rows := make([]export.Row, 0, len(sellers))
	for _, seller := range sellers {
		row, keys := normalizer.Normalize(seller)
		exporter.Extend(keys)
		rows = append(rows, row)
	}

	out := filepath.Join(cfg.OutputDir, "vtex_sellers.csv")
	if err := exporter.WriteFile(out, rows); err != nil {
		logger.Fatal("writing csv", zap.String("file", out), zap.Error(err))
	}
	logger.Info("sellers exported", zap.Int("rows", len(rows)), zap.String("file", out))
}
