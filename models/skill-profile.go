package models

import (
	"github.com/lib/pq"
)

// SkillProfile é a matrícula do estudante no curso junto com as seis
// notas de habilidade avaliadas. Notas nunca são nulas; quem não fez
// avaliação fica com 0, que é sinal válido de nota baixa, não de
// "sem dado".
type SkillProfile struct {
	StudentId int64 `gorm:"primaryKey;autoIncrement:false"`
	Student   *User
	CourseId  int64 `gorm:"primaryKey;autoIncrement:false"`
	Course    *Course

	Tools pq.StringArray `gorm:"type:text[]"`

	Leadership         float64 `gorm:"not null;default:0"`
	AnalyticalThinking float64 `gorm:"not null;default:0"`
	Creativity         float64 `gorm:"not null;default:0"`
	ExecutionStrength  float64 `gorm:"not null;default:0"`
	Communication      float64 `gorm:"not null;default:0"`
	Teamwork           float64 `gorm:"not null;default:0"`

	HadFirstUpdate bool `gorm:"not null;default:false"`
}

func (SkillProfile) TableName() string {
	return "skill_profiles"
}
