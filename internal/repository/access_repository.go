package repository

import (
	"context"

	"warehouse/internal/domain/model"
)

type PermissionRepository interface {
	Create(ctx context.Context, p *model.Permission) error
	FindByID(ctx context.Context, id int64) (model.Permission, error)
	// 存在しないIDは結果に含めない（エラーにもしない）
	FindByIDs(ctx context.Context, ids []int64) ([]model.Permission, error)
	List(ctx context.Context) ([]model.Permission, error)
}

// ロール（permissionsをまとめて返す）
type RoleRepository interface {
	Create(ctx context.Context, r *model.Role) error
	FindByID(ctx context.Context, id int64) (model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
	// 権限を差し替える（マージしない）
	ReplacePermissions(ctx context.Context, roleID int64, permissions []model.Permission) error
}
