// Package db opens the configured relational database and resolves the
// storage implementation the rest of the app talks to
package db

import (
	"fmt"

	"therapyhq/practice-api/model"
	"therapyhq/practice-api/pkg/security"
	"therapyhq/practice-api/store"
	"therapyhq/practice-api/store/gormstore"
	"therapyhq/practice-api/store/memstore"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func New() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch driver := viper.GetString("database.driver"); driver {
	case "postgres":
		dialector = postgres.Open(viper.GetString("database.dsn"))
	case "sqlite":
		dialector = sqlite.Open(viper.GetString("database.path"))
	default:
		return nil, fmt.Errorf("unknown database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open database, %w", err)
	}

	err = db.AutoMigrate(
		model.Tenant{},
		model.User{},
		model.Client{},
		model.Session{},
		model.Note{},
		model.Media{},
		model.AIInsight{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}

// NewStore is the single place where the storage toggle is resolved.
// "database" opens the configured relational store, "memory" backs the API
// with maps for tests and local poking.
func NewStore(storageType string, argon *security.ArgonHash) (store.Store, error) {
	switch storageType {
	case "database":
		conn, err := New()
		if err != nil {
			return nil, err
		}

		return gormstore.New(conn, argon)
	case "memory":
		return memstore.New(argon), nil
	default:
		return nil, fmt.Errorf("unknown storage type %q", storageType)
	}
}
