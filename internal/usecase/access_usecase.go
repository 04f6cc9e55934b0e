package usecase

import (
	"context"
	"errors"
	"strings"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"
)

// 権限・ロール
type AccessUsecase struct {
	tx          repo.TransactionManager
	permissions repo.PermissionRepository
	roles       repo.RoleRepository
}

func NewAccessUsecase(tx repo.TransactionManager, permissions repo.PermissionRepository, roles repo.RoleRepository) *AccessUsecase {
	return &AccessUsecase{tx: tx, permissions: permissions, roles: roles}
}

type CreatePermissionInput struct {
	Code *string
	Name *string
}

type CreateRoleInput struct {
	Code          *string
	Name          *string
	PermissionIDs []int64
}

func (u *AccessUsecase) ListPermissions(ctx context.Context) ([]model.Permission, error) {
	list, err := u.permissions.List(ctx)
	if err != nil {
		return nil, dbError()
	}
	return list, nil
}

func (u *AccessUsecase) GetPermission(ctx context.Context, id int64) (model.Permission, error) {
	p, err := u.permissions.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Permission{}, notFoundError("permission not found")
	}
	if err != nil {
		return model.Permission{}, dbError()
	}
	return p, nil
}

func (u *AccessUsecase) CreatePermission(ctx context.Context, in CreatePermissionInput) (model.Permission, error) {
	if isBlank(in.Code) || isBlank(in.Name) {
		return model.Permission{}, validationError("code and name are required")
	}
	p := model.Permission{
		Code: strings.TrimSpace(*in.Code),
		Name: strings.TrimSpace(*in.Name),
	}
	if err := u.permissions.Create(ctx, &p); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return model.Permission{}, conflictError("permission code already exists")
		}
		return model.Permission{}, dbError()
	}
	return p, nil
}

func (u *AccessUsecase) ListRoles(ctx context.Context) ([]model.Role, error) {
	list, err := u.roles.List(ctx)
	if err != nil {
		return nil, dbError()
	}
	return list, nil
}

func (u *AccessUsecase) GetRole(ctx context.Context, id int64) (model.Role, error) {
	r, err := u.roles.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Role{}, notFoundError("role not found")
	}
	if err != nil {
		return model.Role{}, dbError()
	}
	return r, nil
}

// permission_idsのうち存在しないものは黙って捨てる
func (u *AccessUsecase) CreateRole(ctx context.Context, in CreateRoleInput) (model.Role, error) {
	if isBlank(in.Code) || isBlank(in.Name) {
		return model.Role{}, validationError("code and name are required")
	}

	var out model.Role
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		role := model.Role{
			Code: strings.TrimSpace(*in.Code),
			Name: strings.TrimSpace(*in.Name),
		}
		if err := r.Roles().Create(ctx, &role); err != nil {
			if errors.Is(err, repo.ErrDuplicate) {
				return conflictError("role code already exists")
			}
			return dbError()
		}

		if len(in.PermissionIDs) > 0 {
			perms, err := r.Permissions().FindByIDs(ctx, in.PermissionIDs)
			if err != nil {
				return dbError()
			}
			if err := r.Roles().ReplacePermissions(ctx, role.ID, perms); err != nil {
				return dbError()
			}
		}

		saved, err := r.Roles().FindByID(ctx, role.ID)
		if err != nil {
			return dbError()
		}
		out = saved
		return nil
	})
	if err != nil {
		return model.Role{}, err
	}
	return out, nil
}

// マージではなく置き換え。空なら全部外す
func (u *AccessUsecase) AssignPermissions(ctx context.Context, roleID int64, permissionIDs []int64) (model.Role, error) {
	var out model.Role
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Roles().FindByID(ctx, roleID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return notFoundError("role not found")
			}
			return dbError()
		}

		perms, err := r.Permissions().FindByIDs(ctx, permissionIDs)
		if err != nil {
			return dbError()
		}
		if err := r.Roles().ReplacePermissions(ctx, roleID, perms); err != nil {
			return dbError()
		}

		saved, err := r.Roles().FindByID(ctx, roleID)
		if err != nil {
			return dbError()
		}
		out = saved
		return nil
	})
	if err != nil {
		return model.Role{}, err
	}
	return out, nil
}
