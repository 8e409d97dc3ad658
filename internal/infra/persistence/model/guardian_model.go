package model

import "github.com/google/uuid"

// GuardianModel mirrors the 'guardians' table.
type GuardianModel struct {
	ID      int64     `gorm:"primaryKey;autoIncrement"`
	Kinship string    `gorm:"type:varchar(50)"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;unique"`

	User    *UserModel    `gorm:"foreignKey:UserID"`
	Players []PlayerModel `gorm:"many2many:players_guardians;joinForeignKey:GuardianID;joinReferences:PlayerID"`
}

// TableName explicitly sets the table name for GORM.
func (GuardianModel) TableName() string {
	return "guardians"
}

// PlayerGuardianModel mirrors the 'players_guardians' join table.
type PlayerGuardianModel struct {
	PlayerID   int64 `gorm:"primaryKey"`
	GuardianID int64 `gorm:"primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (PlayerGuardianModel) TableName() string {
	return "players_guardians"
}
