package migrations

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"teamforge/database"
	"teamforge/models"

	"github.com/ottomillrath/goose/v2"
)

// goose precisa de um path pra executar migrations do tipo sql;
// o executável fica na pasta bin, então a pasta migrations fica
// nesse path relativo a ele
const (
	migrationsPath = "../migrations"

	// a versão modificada do goose suporta múltiplos serviços num
	// único banco; essa string identifica o nosso
	service = "teamforge"
)

func RunMigrations(ctx context.Context) error {
	dbCon, err := database.GetConnectionWithContext(ctx)
	if err != nil {
		return err
	}

	err = dbCon.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.SkillProfile{},
		&models.Team{},
		&models.TeamMember{},
	)
	if err != nil {
		return err
	}

	// https://stackoverflow.com/a/18537419
	ex, err := os.Executable()
	if err != nil {
		return err
	}
	exPath := filepath.ToSlash(filepath.Dir(ex))

	err = goose.SetDialect("postgres")
	if err != nil {
		return err
	}

	exPath = path.Join(exPath, migrationsPath)
	return goose.Run("up", dbCon, service, filepath.FromSlash(exPath))
}
