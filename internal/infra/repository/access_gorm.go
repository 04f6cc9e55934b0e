package repository

import (
	"context"

	"warehouse/internal/domain/model"
	repo "warehouse/internal/repository"

	"gorm.io/gorm"
)

type PermissionGormRepository struct {
	db *gorm.DB
}

func NewPermissionGormRepository(db *gorm.DB) *PermissionGormRepository {
	return &PermissionGormRepository{db: db}
}

func (r *PermissionGormRepository) Create(ctx context.Context, p *model.Permission) error {
	return translateError(r.db.WithContext(ctx).Create(p).Error)
}

func (r *PermissionGormRepository) FindByID(ctx context.Context, id int64) (model.Permission, error) {
	var p model.Permission
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return model.Permission{}, translateError(err)
	}
	return p, nil
}

// 見つかったものだけ返す
func (r *PermissionGormRepository) FindByIDs(ctx context.Context, ids []int64) ([]model.Permission, error) {
	if len(ids) == 0 {
		return []model.Permission{}, nil
	}
	var list []model.Permission
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *PermissionGormRepository) List(ctx context.Context) ([]model.Permission, error) {
	var list []model.Permission
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

type RoleGormRepository struct {
	db *gorm.DB
}

func NewRoleGormRepository(db *gorm.DB) *RoleGormRepository {
	return &RoleGormRepository{db: db}
}

func preloadPermissions(db *gorm.DB) *gorm.DB {
	return db.Order("permissions.id ASC")
}

func (r *RoleGormRepository) Create(ctx context.Context, role *model.Role) error {
	return translateError(r.db.WithContext(ctx).Create(role).Error)
}

func (r *RoleGormRepository) FindByID(ctx context.Context, id int64) (model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).
		Preload("Permissions", preloadPermissions).
		First(&role, id).Error
	if err != nil {
		return model.Role{}, translateError(err)
	}
	normalizePermissions(&role)
	return role, nil
}

func (r *RoleGormRepository) List(ctx context.Context) ([]model.Role, error) {
	var list []model.Role
	err := r.db.WithContext(ctx).
		Preload("Permissions", preloadPermissions).
		Order("id DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	for i := range list {
		normalizePermissions(&list[i])
	}
	return list, nil
}

// 権限なしでも [] で返す
func normalizePermissions(role *model.Role) {
	if role.Permissions == nil {
		role.Permissions = []model.Permission{}
	}
}

// role_permissionsを指定の集合に置き換える
func (r *RoleGormRepository) ReplacePermissions(ctx context.Context, roleID int64, permissions []model.Permission) error {
	role := model.Role{ID: roleID}
	assoc := r.db.WithContext(ctx).Model(&role).Association("Permissions")
	if len(permissions) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(permissions)
}

var (
	_ repo.PermissionRepository = (*PermissionGormRepository)(nil)
	_ repo.RoleRepository       = (*RoleGormRepository)(nil)
)
