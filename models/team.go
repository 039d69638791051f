package models

import (
	"teamforge/database"
)

type Team struct {
	database.BaseModelWithSoftDelete
	CourseId int64 `gorm:"not null"`
	Course   *Course
	Name     string `gorm:"not null"`

	FormationMethod string  `gorm:"not null"`
	BalanceScore    float64 `gorm:"not null;default:0"`
	Rationale       string  `gorm:"not null"`
	Status          string  `gorm:"not null;default:'draft'"`

	CreatedById int64 `gorm:"not null"`
	CreatedBy   *User

	Members []*TeamMember `gorm:"foreignKey:TeamId"`
}
