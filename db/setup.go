package db

import (
	"github.com/skillbridge-dev/skillbridge/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the store maps to ConflictError.
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func Migrate(gdb *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Project{},
		&models.Profile{},
		&models.ProjectMembership{},
		&models.UserProfile{},
		&models.ProjectRequestedProfile{},
	}

	migrator := gdb.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := gdb.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
