package models

import (
	"time"

	"teamforge/database"
)

type Course struct {
	database.BaseModelWithSoftDelete
	Name        string `gorm:"not null"`
	ProfessorId int64  `gorm:"not null"`
	Professor   *User
	// período letivo; fora dele não se formam times novos
	TermStart time.Time `gorm:"not null"`
	TermEnd   time.Time `gorm:"not null"`

	Students []*SkillProfile `gorm:"foreignKey:CourseId"`
}
