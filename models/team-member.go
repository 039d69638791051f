package models

import (
	"time"
)

type TeamMember struct {
	TeamId    int64 `gorm:"primaryKey;autoIncrement:false"`
	Team      *Team
	StudentId int64 `gorm:"primaryKey;autoIncrement:false"`
	Student   *User

	Role string `gorm:"not null"`

	// snapshot compacto das habilidades no momento da formação;
	// o perfil continua editável depois, o snapshot não muda
	Leadership         float64 `gorm:"not null;default:0"`
	AnalyticalThinking float64 `gorm:"not null;default:0"`
	Creativity         float64 `gorm:"not null;default:0"`
	ExecutionStrength  float64 `gorm:"not null;default:0"`

	JoinedAt time.Time `gorm:"not null"`
}
