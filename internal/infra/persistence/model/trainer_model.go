package model

import (
	"time"

	"github.com/google/uuid"
)

// TrainerModel mirrors the 'trainers' table. Each trainer profile belongs to
// exactly one user account.
type TrainerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	LicenseLevel string    `gorm:"type:varchar(50)"`
	Specialty    string    `gorm:"type:varchar(100)"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;unique"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (TrainerModel) TableName() string {
	return "trainers"
}
