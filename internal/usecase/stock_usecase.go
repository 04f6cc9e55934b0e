package usecase

import (
	"context"
	"errors"
	"math"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"

	"go.uber.org/zap"
)

// 入庫（receive）・出庫（ship）
type StockUsecase struct {
	tx       repo.TransactionManager
	inbound  repo.InboundOrderRepository
	outbound repo.OutboundOrderRepository
	log      *zap.Logger
}

func NewStockUsecase(
	tx repo.TransactionManager,
	inbound repo.InboundOrderRepository,
	outbound repo.OutboundOrderRepository,
	log *zap.Logger,
) *StockUsecase {
	return &StockUsecase{
		tx:       tx,
		inbound:  inbound,
		outbound: outbound,
		log:      log,
	}
}

type ReceiveInput struct {
	ItemID     int64
	Quantity   int64
	SupplierID *int64
	Note       *string
}

type ShipInput struct {
	ItemID     int64
	Quantity   int64
	CustomerID *int64
	Note       *string
}

const errMovementInput = "item_id and positive quantity are required"

// 在庫加算＋アラート判定＋入庫伝票作成を1トランザクションで行う
func (u *StockUsecase) Receive(ctx context.Context, in ReceiveInput) (model.InboundOrderView, error) {
	if in.ItemID <= 0 || in.Quantity <= 0 {
		return model.InboundOrderView{}, validationError(errMovementInput)
	}

	var out model.InboundOrderView
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		item, err := lockItem(ctx, r, in.ItemID)
		if err != nil {
			return err
		}

		//桁あふれで負数にならないように
		if in.Quantity > math.MaxInt64-item.Quantity {
			return businessRuleError("quantity exceeds maximum stock")
		}

		item.Quantity += in.Quantity
		if err := r.Items().SetQuantity(ctx, item.ID, item.Quantity); err != nil {
			return dbError()
		}
		if _, err := checkInventoryAlert(ctx, r.Alerts(), item, u.log); err != nil {
			return err
		}

		order := model.InboundOrder{
			ItemID:     item.ID,
			SupplierID: in.SupplierID,
			Quantity:   in.Quantity,
			Note:       in.Note,
		}
		if err := r.InboundOrders().Create(ctx, &order); err != nil {
			return dbError()
		}

		v, err := r.InboundOrders().FindByID(ctx, order.ID)
		if err != nil {
			return dbError()
		}
		out = v
		return nil
	})
	if err != nil {
		return model.InboundOrderView{}, err
	}

	u.log.Info("stock received", zap.Int64("item_id", in.ItemID), zap.Int64("quantity", in.Quantity))
	return out, nil
}

// 在庫が足りなければ何も変更せず業務エラー
func (u *StockUsecase) Ship(ctx context.Context, in ShipInput) (model.OutboundOrderView, error) {
	if in.ItemID <= 0 || in.Quantity <= 0 {
		return model.OutboundOrderView{}, validationError(errMovementInput)
	}

	var out model.OutboundOrderView
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		item, err := lockItem(ctx, r, in.ItemID)
		if err != nil {
			return err
		}

		//在庫不足
		if item.Quantity < in.Quantity {
			return businessRuleError("insufficient stock")
		}

		item.Quantity -= in.Quantity
		if err := r.Items().SetQuantity(ctx, item.ID, item.Quantity); err != nil {
			return dbError()
		}
		if _, err := checkInventoryAlert(ctx, r.Alerts(), item, u.log); err != nil {
			return err
		}

		order := model.OutboundOrder{
			ItemID:     item.ID,
			CustomerID: in.CustomerID,
			Quantity:   in.Quantity,
			Note:       in.Note,
		}
		if err := r.OutboundOrders().Create(ctx, &order); err != nil {
			return dbError()
		}

		v, err := r.OutboundOrders().FindByID(ctx, order.ID)
		if err != nil {
			return dbError()
		}
		out = v
		return nil
	})
	if err != nil {
		return model.OutboundOrderView{}, err
	}

	u.log.Info("stock shipped", zap.Int64("item_id", in.ItemID), zap.Int64("quantity", in.Quantity))
	return out, nil
}

func (u *StockUsecase) ListInbound(ctx context.Context) ([]model.InboundOrderView, error) {
	list, err := u.inbound.List(ctx)
	if err != nil {
		return nil, dbError()
	}
	return list, nil
}

func (u *StockUsecase) GetInbound(ctx context.Context, id int64) (model.InboundOrderView, error) {
	v, err := u.inbound.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.InboundOrderView{}, notFoundError("inbound order not found")
	}
	if err != nil {
		return model.InboundOrderView{}, dbError()
	}
	return v, nil
}

func (u *StockUsecase) ListOutbound(ctx context.Context) ([]model.OutboundOrderView, error) {
	list, err := u.outbound.List(ctx)
	if err != nil {
		return nil, dbError()
	}
	return list, nil
}

func (u *StockUsecase) GetOutbound(ctx context.Context, id int64) (model.OutboundOrderView, error) {
	v, err := u.outbound.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.OutboundOrderView{}, notFoundError("outbound order not found")
	}
	if err != nil {
		return model.OutboundOrderView{}, dbError()
	}
	return v, nil
}

// 行ロックして取得（無ければ404）
func lockItem(ctx context.Context, r repo.TxRepos, itemID int64) (model.Item, error) {
	item, err := r.Items().FindByIDForUpdate(ctx, itemID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Item{}, notFoundError("item not found")
	}
	if err != nil {
		return model.Item{}, dbError()
	}
	return item, nil
}
