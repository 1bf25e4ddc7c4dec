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
	logger.Info("collecting order items",
		zap.String("from", window.StartUTC()), zap.String("to", window.EndUTC()))

	orders, err := client.ListOrders(ctx, window)
	if err != nil {
		logger.Warn("order pull ended early, exporting what was collected", zap.Error(err))
	}

	extractedAt := export.NowLocal()
	var rows []export.Row
	for _, summary := range orders {
		id := summary.Identifier("orderId")
		detail, derr := client.GetOrder(ctx, id)
		if derr != nil {
			logger.Warn("order detail unavailable, keeping summary",
				zap.String("order", id), zap.Error(derr))
			detail = summary
		}
		rows = append(rows, vtex.FlattenOrderItems(detail, extractedAt)...)
	}

	exporter := export.NewExporter(vtex.OrderItemColumns)
	out := filepath.Join(cfg.OutputDir, "pedidos_itens.csv")
	if err := exporter.WriteFile(out, rows); err != nil {
		logger.Fatal("writing csv", zap.String("file", out), zap.Error(err))
	}
	logger.Info("order items exported",
		zap.Int("orders", len(orders)), zap.Int("rows", len(rows)), zap.String("file", out))
}
