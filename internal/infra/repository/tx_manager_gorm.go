package repository

import (
	"context"

	repo "warehouse/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	items          repo.ItemRepository
	inboundOrders  repo.InboundOrderRepository
	outboundOrders repo.OutboundOrderRepository
	alerts         repo.AlertRepository
	permissions    repo.PermissionRepository
	roles          repo.RoleRepository
}

func (r *txReposGorm) Items() repo.ItemRepository                   { return r.items }
func (r *txReposGorm) InboundOrders() repo.InboundOrderRepository   { return r.inboundOrders }
func (r *txReposGorm) OutboundOrders() repo.OutboundOrderRepository { return r.outboundOrders }
func (r *txReposGorm) Alerts() repo.AlertRepository                 { return r.alerts }
func (r *txReposGorm) Permissions() repo.PermissionRepository       { return r.permissions }
func (r *txReposGorm) Roles() repo.RoleRepository                   { return r.roles }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

// fnがerrorを返したらrollback、panicでもrollbackされる
func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			items:          NewItemGormRepository(tx),
			inboundOrders:  NewInboundOrderGormRepository(tx),
			outboundOrders: NewOutboundOrderGormRepository(tx),
			alerts:         NewAlertGormRepository(tx),
			permissions:    NewPermissionGormRepository(tx),
			roles:          NewRoleGormRepository(tx),
		}
		return fn(r)
	})
}
