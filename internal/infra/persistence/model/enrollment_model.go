package model

import "time"

// EnrollmentModel mirrors the 'enrollments' table.
type EnrollmentModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	EntryDate time.Time `gorm:"type:date;not null"`
	Status    string    `gorm:"type:varchar(10);not null;default:'Pendente'"`
	PlayerID  int64     `gorm:"not null;index"`
	ClassID   int64     `gorm:"not null;index"`

	Player *PlayerModel `gorm:"foreignKey:PlayerID"`
	Class  *ClassModel  `gorm:"foreignKey:ClassID"`
}

// TableName explicitly sets the table name for GORM.
func (EnrollmentModel) TableName() string {
	return "enrollments"
}

// AttendanceModel mirrors the 'attendances' table. Status is 1 for present,
// 0 for absent.
type AttendanceModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	ClassDate    time.Time `gorm:"type:date;not null"`
	Status       int       `gorm:"not null"`
	EnrollmentID int64     `gorm:"not null;index"`

	Enrollment *EnrollmentModel `gorm:"foreignKey:EnrollmentID"`
}

// TableName explicitly sets the table name for GORM.
func (AttendanceModel) TableName() string {
	return "attendances"
}
