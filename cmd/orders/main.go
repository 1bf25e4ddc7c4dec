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

	window := export.CreationWindow(vtex.OrderWindowDays)
	logger.Info("collecting orders",
		zap.String("from", window.StartUTC()), zap.String("to", window.EndUTC()))

	orders, err := client.ListOrders(ctx, window)
	if err != nil {
		logger.Warn("order pull ended early, exporting what was collected", zap.Error(err))
	}

	normalizer := export.NewNormalizer(nil)
	exporter := export.NewExporter(vtex.OrderColumns)
	rows := make([]export.Row, 0, len(orders))
	for _, order := range orders {
		row, keys := normalizer.Normalize(order)
		exporter.Extend(keys)
		rows = append(rows, row)
	}

	out := filepath.Join(cfg.OutputDir, "pedidos.csv")
	if err := exporter.WriteFile(out, rows); err != nil {
		logger.Fatal("writing csv", zap.String("file", out), zap.Error(err))
	}
	logger.Info("orders exported", zap.Int("rows", len(rows)), zap.String("file", out))
}
