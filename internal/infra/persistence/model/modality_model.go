package model

// ModalityModel mirrors the 'modalities' table.
type ModalityModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(45);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ModalityModel) TableName() string {
	return "modalities"
}
