package usecase

import (
	"context"
	"errors"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"

	"go.uber.org/zap"
)

type AlertUsecase struct {
	tx     repo.TransactionManager
	alerts repo.AlertRepository
	log    *zap.Logger
}

func NewAlertUsecase(tx repo.TransactionManager, alerts repo.AlertRepository, log *zap.Logger) *AlertUsecase {
	return &AlertUsecase{tx: tx, alerts: alerts, log: log}
}

type GenerateAlertsOutput struct {
	Created int `json:"created"`
}

func (u *AlertUsecase) List(ctx context.Context) ([]model.InventoryAlertView, error) {
	list, err := u.alerts.List(ctx)
	if err != nil {
		return nil, dbError()
	}
	return list, nil
}

func (u *AlertUsecase) Get(ctx context.Context, id int64) (model.InventoryAlertView, error) {
	v, err := u.alerts.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.InventoryAlertView{}, notFoundError("alert not found")
	}
	if err != nil {
		return model.InventoryAlertView{}, dbError()
	}
	return v, nil
}

// 全品目を判定して下限以下のものにアラートを作る。過去のアラートは見ない
func (u *AlertUsecase) Generate(ctx context.Context) (GenerateAlertsOutput, error) {
	var out GenerateAlertsOutput
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		items, err := r.Items().ListAll(ctx)
		if err != nil {
			return dbError()
		}
		for _, item := range items {
			created, err := checkInventoryAlert(ctx, r.Alerts(), item, u.log)
			if err != nil {
				return err
			}
			if created {
				out.Created++
			}
		}
		return nil
	})
	if err != nil {
		return GenerateAlertsOutput{}, err
	}
	return out, nil
}
