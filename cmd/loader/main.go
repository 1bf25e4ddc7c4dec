package main

import (
	"context"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vtexops/vtex-exporter-go/internal/config"
	"github.com/vtexops/vtex-exporter-go/internal/db"
	"github.com/vtexops/vtex-exporter-go/internal/logging"
	"github.com/vtexops/vtex-exporter-go/internal/vtex"
)

func main() {
	logger := logging.New()
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	database, err := db.NewDB(ctx)
	if err != nil {
		logger.Fatal("connecting to database", zap.Error(err))
	}
	defer database.Pool.Close()

	outputDir := config.OutputDir()
	batchID := uuid.New()
	logger.Info("loading exports", zap.String("dir", outputDir), zap.String("batch", batchID.String()))

	loadSellers(ctx, logger, database, batchID, filepath.Join(outputDir, "vtex_sellers.csv"))
	loadOrderItems(ctx, logger, database, batchID, filepath.Join(outputDir, "pedidos_itens.csv"))
}

func loadSellers(ctx context.Context, logger *zap.Logger, database *db.DB, batchID uuid.UUID, file string) {
	header, rows, err := db.ReadExport(file)
	if err != nil {
		logger.Warn("sellers export not loaded", zap.String("file", file), zap.Error(err))
		return
	}
	if err := db.ValidateHeader(header, vtex.SellerColumns); err != nil {
		logger.Warn("sellers export not loaded", zap.String("file", file), zap.Error(err))
		return
	}
	loaded, err := database.LoadSellers(ctx, batchID, rows)
	if err != nil {
		logger.Error("loading sellers failed", zap.Int("loaded", loaded), zap.Error(err))
		return
	}
	logger.Info("sellers loaded", zap.Int("rows", loaded), zap.String("file", file))
}

func loadOrderItems(ctx context.Context, logger *zap.Logger, database *db.DB, batchID uuid.UUID, file string) {
	header, rows, err := db.ReadExport(file)
	if err != nil {
		logger.Warn("order items export not loaded", zap.String("file", file), zap.Error(err))
		return
	}
	if err := db.ValidateHeader(header, vtex.OrderItemColumns); err != nil {
		logger.Warn("order items export not loaded", zap.String("file", file), zap.Error(err))
		return
	}
	loaded, err := database.LoadOrderItems(ctx, batchID, rows)
	if err != nil {
		logger.Error("loading order items failed", zap.Int("loaded", loaded), zap.Error(err))
		return
	}
	logger.Info("order items loaded", zap.Int("rows", loaded), zap.String("file", file))
}
