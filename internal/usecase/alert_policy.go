package usecase

import (
	"context"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"

	"go.uber.org/zap"
)

// quantity <= min_stock なら在庫アラートを1行追加する。
// 既存のopenアラートとの重複チェックはしない。
func checkInventoryAlert(ctx context.Context, alerts repo.AlertRepository, item model.Item, log *zap.Logger) (bool, error) {
	alert, ok := item.LowStockAlert()
	if !ok {
		return false, nil
	}
	if err := alerts.Create(ctx, &alert); err != nil {
		log.Error("failed to create inventory alert", zap.Int64("item_id", item.ID), zap.Error(err))
		return false, dbError()
	}
	log.Info("inventory alert created",
		zap.Int64("item_id", item.ID),
		zap.Int64("current_quantity", alert.CurrentQuantity),
		zap.Int64("threshold", alert.Threshold),
	)
	return true, nil
}
