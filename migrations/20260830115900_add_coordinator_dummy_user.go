package migrations

import (
	"teamforge/models"

	"github.com/ottomillrath/goose/v2"
	"gorm.io/gorm"
)

func init() {
	goose.AddMigration(service, upAddCoordinatorDummyUser, downAddCoordinatorDummyUser)
}

func upAddCoordinatorDummyUser(tx *gorm.DB) error {
	user := &models.User{
		Name:  "Professor Dummy",
		Type:  models.UserTypeProfessor,
		Email: "professor@example.com",
	}

	r := tx.Create(user)

	return r.Error
}

func downAddCoordinatorDummyUser(tx *gorm.DB) error {
	r := tx.Where(models.User{
		Email: "professor@example.com",
	}, "Email").Delete(&models.User{})
	return r.Error
}
