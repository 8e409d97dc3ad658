package model

import (
	"time"

	"github.com/google/uuid"
)

// LeadModel mirrors the 'leads' table. MagicToken is the opaque value mailed
// to a prospect for trial booking; it is nullable and unique while set.
type LeadModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string     `gorm:"type:varchar(100);not null"`
	Email          string     `gorm:"type:varchar(255);not null"`
	Phone          string     `gorm:"type:varchar(20)"`
	EntryDate      time.Time  `gorm:"type:date"`
	Source         string     `gorm:"type:varchar(50)"`
	Status         string     `gorm:"type:varchar(20);not null;default:'Novo'"`
	MagicToken     *string    `gorm:"type:varchar(64);uniqueIndex"`
	MagicExpiresAt *time.Time `gorm:""`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (LeadModel) TableName() string {
	return "leads"
}
