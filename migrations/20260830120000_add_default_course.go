package migrations

import (
	"teamforge/models"

	"github.com/jinzhu/now"
	"github.com/ottomillrath/goose/v2"
	"gorm.io/gorm"
)

func init() {
	goose.AddMigration(service, upAddDefaultCourse, downAddDefaultCourse)
}

func upAddDefaultCourse(tx *gorm.DB) error {
	// assume-se que o professor criado na migração anterior é ID 1;
	// se não for, alterar aqui ou buscar pelo e-mail

	course := &models.Course{
		Name:        "Fábrica de Software",
		ProfessorId: 1,
		TermStart:   now.BeginningOfYear(),
		TermEnd:     now.EndOfYear(),
	}

	r := tx.Create(course)

	return r.Error
}

func downAddDefaultCourse(tx *gorm.DB) error {
	r := tx.Where(models.Course{
		Name: "Fábrica de Software",
	}, "Name").Delete(&models.Course{})
	return r.Error
}
