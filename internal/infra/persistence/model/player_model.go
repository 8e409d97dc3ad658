package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlayerModel mirrors the 'players' table. Weight and height are exact
// decimals (kg and cm).
type PlayerModel struct {
	ID              int64           `gorm:"primaryKey;autoIncrement"`
	Weight          decimal.Decimal `gorm:"type:numeric(5,2)"`
	Height          decimal.Decimal `gorm:"type:numeric(5,2)"`
	PrimaryPosition string          `gorm:"type:varchar(50)"`
	SecondPosition  string          `gorm:"type:varchar(50)"`
	DominantFoot    string          `gorm:"type:varchar(10)"`
	EntryDate       time.Time       `gorm:"type:date"`
	SportStatus     string          `gorm:"type:varchar(20)"`
	Notes           string          `gorm:"type:text"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;unique"`
	SchoolID        int64           `gorm:"not null;index"`

	User   *UserModel   `gorm:"foreignKey:UserID"`
	School *SchoolModel `gorm:"foreignKey:SchoolID"`
}

// TableName explicitly sets the table name for GORM.
func (PlayerModel) TableName() string {
	return "players"
}
