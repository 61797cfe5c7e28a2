package rbac

import "gorm.io/gorm"

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetRolePermissions() ([]RolePermission, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetRolePermissions() ([]RolePermission, error) {
	var perms []RolePermission
	err := r.db.
		Table("role_permissions").
		Select("role, resource, action").
		Find(&perms).Error
	return perms, err
}
