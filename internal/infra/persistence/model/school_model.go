package model

import "time"

// SchoolModel mirrors the 'schools' table.
type SchoolModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);not null"`
	Address   string `gorm:"type:varchar(255)"`
	Phone     string `gorm:"type:varchar(20)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SchoolModel) TableName() string {
	return "schools"
}
