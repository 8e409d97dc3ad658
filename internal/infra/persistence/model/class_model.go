package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassModel mirrors the 'classes' table.
type ClassModel struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	Name       string     `gorm:"type:varchar(100);not null"`
	Weekdays   string     `gorm:"type:varchar(50)"`
	Schedule   time.Time  `gorm:"type:time"`
	Status     string     `gorm:"type:varchar(10);not null;default:'Ativo'"`
	ModalityID *int64     `gorm:"index"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index"`
	TrainerID  uuid.UUID  `gorm:"type:uuid;not null;index"`

	Modality *ModalityModel `gorm:"foreignKey:ModalityID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID"`
	Trainer  *TrainerModel  `gorm:"foreignKey:TrainerID"`
}

// TableName explicitly sets the table name for GORM.
func (ClassModel) TableName() string {
	return "classes"
}
