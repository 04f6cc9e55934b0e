package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Items() ItemRepository
	InboundOrders() InboundOrderRepository
	OutboundOrders() OutboundOrderRepository
	Alerts() AlertRepository
	Permissions() PermissionRepository
	Roles() RoleRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
