package model

import "github.com/google/uuid"

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(50);unique;not null"`
	Description string `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}

// UserRoleModel mirrors the 'users_roles' join table.
type UserRoleModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID int64     `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (UserRoleModel) TableName() string {
	return "users_roles"
}
