package models

import (
	"teamforge/database"
)

type UserType int32

const (
	UserTypeUnknown UserType = iota
	UserTypeStudent
	UserTypeProfessor
)

type User struct {
	database.BaseModelWithSoftDelete
	Type  UserType `gorm:"not null;type:integer"`
	Name  string   `gorm:"not null"`
	Email string   `gorm:"not null;index"`
}
